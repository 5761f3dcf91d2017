package constants

// accepted content types for uploaded assets, checked against the declared
// multipart header only
var ALLOWED_IMAGE_TYPES = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

var ALLOWED_VIDEO_TYPES = map[string]struct{}{
	"video/mp4":  {},
	"video/webm": {},
}

// multipart field names accepted by the upload endpoint
const (
	ID_FRONT_FIELD      = "id_front"
	SELFIE_FIELD        = "selfie"
	ADDRESS_PROOF_FIELD = "address_proof"
	VIDEO_FIELD         = "video"
)

var PIPELINE_FAILURE_HINT = "OCR / Face / ffmpeg dependency issue"

// structured (legacy) Aadhaar QR payloads always contain this tag
var STRUCTURED_QR_SIGNATURE = "<PrintLetterBarcodeData"

var SECURE_QR_STATUS = "ENCRYPTED"
var SECURE_QR_MESSAGE = "Secure QR detected. UIDAI SDK required."

var DEFAULT_ADDRESS_MATCH_THRESHOLD = 30
var DEFAULT_FACE_DISTANCE_THRESHOLD = 0.75
var DEFAULT_VIDEO_MATCH_THRESHOLD = 70

// audio handed to speech-to-text is resampled to 16 kHz mono
var AUDIO_SAMPLE_RATE = 16000

var KYC_VERIFY_TASK = "kyc:verify"
