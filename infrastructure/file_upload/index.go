package fileupload

import (
	"kyc.gateman.io/infrastructure/env"
	"kyc.gateman.io/infrastructure/file_upload/local"
	"kyc.gateman.io/infrastructure/file_upload/types"
)

func NewFileStore(cfg *env.Config) (types.FileStoreType, error) {
	store, err := local.NewDiskStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	return store, nil
}
