package entities

// KycSubmission holds the stored paths of one set of uploads. VideoPath is
// empty when no video was supplied.
type KycSubmission struct {
	IDImagePath      string `json:"id_image_path"`
	AddressProofPath string `json:"address_proof_path"`
	SelfiePath       string `json:"selfie_path"`
	VideoPath        string `json:"video_path,omitempty"`
}

func (submission KycSubmission) HasVideo() bool {
	return submission.VideoPath != ""
}

// Paths lists every stored upload of the submission.
func (submission KycSubmission) Paths() []string {
	paths := []string{submission.IDImagePath, submission.AddressProofPath, submission.SelfiePath}
	if submission.HasVideo() {
		paths = append(paths, submission.VideoPath)
	}
	return paths
}
