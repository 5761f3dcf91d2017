package entities

type FinalStatus string

const (
	KYCVerified       FinalStatus = "VERIFIED"
	KYCReviewRequired FinalStatus = "REVIEW_REQUIRED"
	KYCRejected       FinalStatus = "REJECTED"
)

type ReasonCode string

const (
	ReasonAadhaarFail           ReasonCode = "AADHAAR_FAIL"
	ReasonSelfieMismatch        ReasonCode = "SELFIE_MISMATCH"
	ReasonAddressMismatch       ReasonCode = "ADDRESS_MISMATCH"
	ReasonVideoIdentityMismatch ReasonCode = "VIDEO_IDENTITY_MISMATCH"
)

// KycVerdict is the result of one pipeline run. REJECTED verdicts carry a Reason
// and none of the partial results.
type KycVerdict struct {
	RunID               string          `json:"run_id"`
	FinalStatus         FinalStatus     `json:"final_status"`
	Reason              *ReasonCode     `json:"reason,omitempty"`
	ReasonDetail        *string         `json:"reason_detail,omitempty"`
	ReviewReasons       []ReasonCode    `json:"review_reasons"`
	DocumentData        *IdentityRecord `json:"document_data,omitempty"`
	AddressVerification *MatchResult    `json:"address_verification"`
	SelfieVerification  *MatchResult    `json:"selfie_verification"`
	VideoVerification   *MatchResult    `json:"video_verification"`
}

func (verdict *KycVerdict) ReasonLabel() string {
	if verdict.Reason == nil {
		return "none"
	}
	return string(*verdict.Reason)
}
