package kyc_usecases

import (
	"context"
	"errors"
	"os"
	"time"

	"kyc.gateman.io/application/services/address"
	"kyc.gateman.io/application/services/document"
	kyc_types "kyc.gateman.io/application/usecases/kyc/types"
	"kyc.gateman.io/application/utils"
	"kyc.gateman.io/entities"
	"kyc.gateman.io/infrastructure/logger"
	"kyc.gateman.io/infrastructure/metrics"
)

type Stage string

const (
	StageExtractIdentity   Stage = "extract_identity"
	StageExtractDocAddress Stage = "extract_doc_address"
	StageAddressMatch      Stage = "address_match"
	StageSelfieMatch       Stage = "selfie_match"
	StageComputeBaseStatus Stage = "compute_base_status"
	StageVideoMatch        Stage = "video_match"
	StageDone              Stage = "done"
	StageRejected          Stage = "rejected"
)

const MalformedQRDetail = "MALFORMED_QR"

// Orchestrator runs the verification stages strictly in sequence for one
// submission at a time. It holds no per-run state and is safe for concurrent use.
type Orchestrator struct {
	Documents        kyc_types.IdentityExtractorType
	Selfies          kyc_types.SelfieVerifierType
	Videos           kyc_types.VideoVerifierType
	AddressThreshold int
	Metrics          *metrics.Metrics
	// WorkRoot is the parent of per-run scratch directories; "" uses os.TempDir.
	WorkRoot string
}

type runState struct {
	runID      string
	submission entities.KycSubmission
	workdir    string

	identity        *entities.IdentityRecord
	documentAddress string
	address         *entities.MatchResult
	selfie          *entities.MatchResult
	video           *entities.MatchResult
	status          entities.FinalStatus
	reviewReasons   []entities.ReasonCode

	rejection    *entities.ReasonCode
	rejectDetail *string
}

// Run executes the pipeline and returns its verdict. Identity or selfie
// failures produce a REJECTED verdict, not an error. Errors mean a dependency
// failed and no verdict could be reached.
func (o *Orchestrator) Run(ctx context.Context, submission entities.KycSubmission) (*entities.KycVerdict, error) {
	state := &runState{runID: utils.GenerateUULDString(), submission: submission}

	workdir, err := os.MkdirTemp(o.WorkRoot, "kyc-"+state.runID+"-")
	if err != nil {
		logger.Error("failed to create run workspace", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	state.workdir = workdir
	defer func() {
		if err := os.RemoveAll(workdir); err != nil {
			logger.Warning("failed to remove run workspace", logger.LoggerOptions{
				Key:  "workdir",
				Data: workdir,
			})
		}
	}()

	o.Metrics.RunStarted()
	defer o.Metrics.RunFinished()

	stage := StageExtractIdentity
	for stage != StageDone && stage != StageRejected {
		start := time.Now()
		next, err := o.step(ctx, stage, state)
		o.Metrics.ObserveStage(string(stage), start)
		if err != nil {
			o.Metrics.IncrementPipelineErrors(string(stage))
			logger.Error("kyc pipeline failed", logger.LoggerOptions{
				Key: "run",
				Data: map[string]interface{}{
					"run_id": state.runID,
					"stage":  stage,
					"error":  err.Error(),
				},
			})
			return nil, err
		}
		stage = next
	}

	verdict := state.verdict()
	o.Metrics.RecordVerdict(string(verdict.FinalStatus), verdict.ReasonLabel())
	logger.Info("kyc run completed", logger.LoggerOptions{
		Key: "run",
		Data: map[string]interface{}{
			"run_id":       verdict.RunID,
			"final_status": verdict.FinalStatus,
			"reason":       verdict.ReasonLabel(),
		},
	})
	return verdict, nil
}

func (o *Orchestrator) step(ctx context.Context, stage Stage, state *runState) (Stage, error) {
	switch stage {
	case StageExtractIdentity:
		return o.extractIdentity(ctx, state)
	case StageExtractDocAddress:
		documentAddress, err := o.Documents.ExtractDocumentAddress(ctx, state.submission.AddressProofPath, state.workdir)
		if err != nil {
			return stage, err
		}
		state.documentAddress = documentAddress
		return StageAddressMatch, nil
	case StageAddressMatch:
		state.address = address.Verify(state.identity.AddressNormalized, state.documentAddress, o.AddressThreshold)
		return StageSelfieMatch, nil
	case StageSelfieMatch:
		result, err := o.Selfies.Verify(ctx, state.submission.SelfiePath, state.submission.IDImagePath, state.workdir)
		if err != nil {
			return stage, err
		}
		if !result.Verified() {
			state.reject(entities.ReasonSelfieMismatch, nil)
			return StageRejected, nil
		}
		state.selfie = result
		return StageComputeBaseStatus, nil
	case StageComputeBaseStatus:
		state.status = entities.KYCVerified
		if !state.address.Verified() {
			state.downgrade(entities.ReasonAddressMismatch)
		}
		if !state.submission.HasVideo() {
			return StageDone, nil
		}
		return StageVideoMatch, nil
	case StageVideoMatch:
		result, err := o.Videos.Verify(ctx, state.submission.VideoPath, *state.identity.Name, state.workdir)
		if err != nil {
			return stage, err
		}
		state.video = result
		if !result.Verified() {
			state.downgrade(entities.ReasonVideoIdentityMismatch)
		}
		return StageDone, nil
	default:
		return stage, errors.New("unknown pipeline stage " + string(stage))
	}
}

func (o *Orchestrator) extractIdentity(ctx context.Context, state *runState) (Stage, error) {
	record, err := o.Documents.ExtractIdentity(ctx, state.submission.IDImagePath)
	var parseErr *document.ParseError
	if errors.As(err, &parseErr) {
		logger.Warning("identity QR payload is malformed", logger.LoggerOptions{
			Key: "run",
			Data: map[string]interface{}{
				"run_id": state.runID,
				"error":  parseErr.Error(),
			},
		})
		state.reject(entities.ReasonAadhaarFail, utils.GetStringPointer(MalformedQRDetail))
		return StageRejected, nil
	}
	if err != nil {
		return StageExtractIdentity, err
	}
	if !record.HasName() {
		state.reject(entities.ReasonAadhaarFail, nil)
		return StageRejected, nil
	}

	logger.Info("identity extracted", logger.LoggerOptions{
		Key: "identity",
		Data: map[string]interface{}{
			"run_id":    state.runID,
			"source":    record.Source,
			"id_number": record.MaskedIDNumber(),
		},
	})
	state.identity = record
	return StageExtractDocAddress, nil
}

func (state *runState) reject(reason entities.ReasonCode, detail *string) {
	state.status = entities.KYCRejected
	state.rejection = &reason
	state.rejectDetail = detail
}

// downgrade moves the run to REVIEW_REQUIRED. Nothing moves it back.
func (state *runState) downgrade(reason entities.ReasonCode) {
	state.status = entities.KYCReviewRequired
	state.reviewReasons = append(state.reviewReasons, reason)
}

func (state *runState) verdict() *entities.KycVerdict {
	if state.status == entities.KYCRejected {
		return &entities.KycVerdict{
			RunID:         state.runID,
			FinalStatus:   entities.KYCRejected,
			Reason:        state.rejection,
			ReasonDetail:  state.rejectDetail,
			ReviewReasons: []entities.ReasonCode{*state.rejection},
		}
	}
	return &entities.KycVerdict{
		RunID:               state.runID,
		FinalStatus:         state.status,
		ReviewReasons:       state.reviewReasons,
		DocumentData:        state.identity,
		AddressVerification: state.address,
		SelfieVerification:  state.selfie,
		VideoVerification:   state.video,
	}
}
