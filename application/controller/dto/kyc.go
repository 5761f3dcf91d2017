package dto

import (
	"mime/multipart"

	"kyc.gateman.io/entities"
)

type KycUploadDTO struct {
	IDFront      *multipart.FileHeader `form:"id_front" validate:"required"`
	Selfie       *multipart.FileHeader `form:"selfie" validate:"required"`
	AddressProof *multipart.FileHeader `form:"address_proof" validate:"required"`
	Video        *multipart.FileHeader `form:"video"`
}

type QRReadDTO struct {
	IDFront *multipart.FileHeader `form:"id_front" validate:"required"`
}

type AadhaarSummary struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

type KycUploadResponse struct {
	Success             bool                  `json:"success"`
	RunID               string                `json:"run_id"`
	FinalStatus         entities.FinalStatus  `json:"final_status"`
	Reason              *entities.ReasonCode  `json:"reason,omitempty"`
	ReasonDetail        *string               `json:"reason_detail,omitempty"`
	Aadhaar             AadhaarSummary        `json:"aadhaar"`
	AddressVerification *entities.MatchResult `json:"address_verification"`
	SelfieVerification  *entities.MatchResult `json:"selfie_verification"`
	VideoVerification   *entities.MatchResult `json:"video_verification"`
	ReviewReasons       []entities.ReasonCode `json:"review_reasons"`
}

// NewKycUploadResponse relays the verdict; review reasons come from the
// verdict as-is.
func NewKycUploadResponse(verdict *entities.KycVerdict) KycUploadResponse {
	response := KycUploadResponse{
		Success:             true,
		RunID:               verdict.RunID,
		FinalStatus:         verdict.FinalStatus,
		Reason:              verdict.Reason,
		ReasonDetail:        verdict.ReasonDetail,
		AddressVerification: verdict.AddressVerification,
		SelfieVerification:  verdict.SelfieVerification,
		VideoVerification:   verdict.VideoVerification,
		ReviewReasons:       verdict.ReviewReasons,
	}
	if verdict.DocumentData != nil {
		response.Aadhaar.Name = verdict.DocumentData.Name
		if verdict.DocumentData.AddressRaw != "" {
			response.Aadhaar.Address = &verdict.DocumentData.AddressRaw
		}
	}
	if len(response.ReviewReasons) == 0 {
		response.ReviewReasons = nil
	}
	return response
}

type KycJobAcceptedResponse struct {
	Success bool   `json:"success"`
	JobID   string `json:"job_id"`
}

type QRReadStatus string

const (
	QRReadSuccess QRReadStatus = "SUCCESS"
	QRReadFailed  QRReadStatus = "FAILED"
)

type QRReadResponse struct {
	Status QRReadStatus             `json:"status"`
	Format entities.QRFormat        `json:"format,omitempty"`
	Data   *entities.IdentityRecord `json:"data,omitempty"`
	Reason *string                  `json:"reason,omitempty"`
}
