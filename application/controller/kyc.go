package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	apperrors "kyc.gateman.io/application/appErrors"
	"kyc.gateman.io/application/controller/dto"
	"kyc.gateman.io/application/interfaces"
	repository_types "kyc.gateman.io/application/repository/types"
	"kyc.gateman.io/application/services/document"
	kyc_usecases "kyc.gateman.io/application/usecases/kyc"
	kyc_types "kyc.gateman.io/application/usecases/kyc/types"
	"kyc.gateman.io/application/utils"
	"kyc.gateman.io/entities"
	file_upload_types "kyc.gateman.io/infrastructure/file_upload/types"
	"kyc.gateman.io/infrastructure/imaging"
	queue_tasks "kyc.gateman.io/infrastructure/message_queue/tasks"
	mq_types "kyc.gateman.io/infrastructure/message_queue/types"
	"kyc.gateman.io/infrastructure/metrics"
	server_response "kyc.gateman.io/infrastructure/serverResponse"
	"kyc.gateman.io/infrastructure/validator"
)

var marshalTaskPayload = json.Marshal

const (
	noQRCodeFound    = "NO_QR_CODE_FOUND"
	unreadableImage  = "UNREADABLE_IMAGE"
	asyncUnavailable = "Asynchronous verification is not enabled"
)

// KycController serves the verification endpoints. Pipeline owns stored
// submissions once they are handed over. Jobs and Queue are nil when
// asynchronous verification is disabled.
type KycController struct {
	Pipeline       kyc_types.PipelineRunnerType
	QR             kyc_types.QRReaderType
	Uploads        file_upload_types.FileStoreType
	Jobs           repository_types.KycJobRepoType
	Queue          mq_types.TaskQueueBroker
	Metrics        *metrics.Metrics
	DiscardUploads bool
}

func (c *KycController) UploadKyc(ctx *interfaces.ApplicationContext[dto.KycUploadDTO]) {
	submission, ok := c.acceptUploads(ctx)
	if !ok {
		return
	}

	verdict, err := c.Pipeline.Run(ctx.RequestCtx, submission)
	if err != nil {
		apperrors.PipelineError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, dto.NewKycUploadResponse(verdict))
}

func (c *KycController) UploadKycAsync(ctx *interfaces.ApplicationContext[dto.KycUploadDTO]) {
	if c.Queue == nil || c.Jobs == nil {
		apperrors.ServiceUnavailableError(ctx.Ctx, asyncUnavailable)
		return
	}
	submission, ok := c.acceptUploads(ctx)
	if !ok {
		return
	}

	now := time.Now().UTC()
	job := &entities.KycJob{
		ID:        utils.GenerateUULDString(),
		Status:    entities.JobPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	payload, err := marshalTaskPayload(queue_tasks.KycVerifyPayload{JobID: job.ID, Submission: submission})
	if err != nil {
		kyc_usecases.DiscardUploads(c.Uploads, submission.Paths())
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	if err := c.Jobs.Save(ctx.RequestCtx, job); err != nil {
		kyc_usecases.DiscardUploads(c.Uploads, submission.Paths())
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}

	err = c.Queue.Enqueue(ctx.RequestCtx, mq_types.QueueTask{
		ID:       job.ID,
		Name:     queue_tasks.HandleKycVerifyTaskName,
		Payload:  payload,
		Priority: mq_types.Medium,
	})
	if err != nil {
		kyc_usecases.DiscardUploads(c.Uploads, submission.Paths())
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusAccepted, dto.KycJobAcceptedResponse{Success: true, JobID: job.ID})
}

func (c *KycController) FetchKycJob(ctx *interfaces.ApplicationContext[any]) {
	if c.Jobs == nil {
		apperrors.ServiceUnavailableError(ctx.Ctx, asyncUnavailable)
		return
	}
	jobID := ctx.Param["id"]
	job, err := c.Jobs.FindByID(ctx.RequestCtx, jobID)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	if job == nil {
		apperrors.NotFoundError(ctx.Ctx, fmt.Sprintf("job %s does not exist", jobID))
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, job)
}

// ReadQR decodes only the QR code of an ID image, without running the pipeline.
func (c *KycController) ReadQR(ctx *interfaces.ApplicationContext[dto.QRReadDTO]) {
	if errs := validator.ValidatorInstance.ValidateStruct(ctx.Body); errs != nil {
		apperrors.ValidationFailedError(ctx.Ctx, errs)
		return
	}
	if err := validator.ValidatorInstance.ValidateValue(contentType(ctx.Body.IDFront), "image_mime"); err != nil {
		c.Metrics.IncrementRejectedUploads("invalid_content_type")
		apperrors.InvalidFileTypeError(ctx.Ctx, err)
		return
	}

	path, err := c.storeUpload(ctx.RequestCtx, ctx.Body.IDFront)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	if c.DiscardUploads {
		defer kyc_usecases.DiscardUploads(c.Uploads, []string{path})
	}

	extraction, err := c.QR.ReadQR(ctx.RequestCtx, path)
	var parseErr *document.ParseError
	switch {
	case errors.As(err, &parseErr):
		server_response.Responder.Respond(ctx.Ctx, http.StatusOK, dto.QRReadResponse{
			Status: dto.QRReadFailed,
			Reason: utils.GetStringPointer(kyc_usecases.MalformedQRDetail),
		})
	case errors.Is(err, imaging.ErrUnreadableImage):
		server_response.Responder.Respond(ctx.Ctx, http.StatusOK, dto.QRReadResponse{
			Status: dto.QRReadFailed,
			Reason: utils.GetStringPointer(unreadableImage),
		})
	case err != nil:
		apperrors.PipelineError(ctx.Ctx, err)
	case extraction == nil:
		server_response.Responder.Respond(ctx.Ctx, http.StatusOK, dto.QRReadResponse{
			Status: dto.QRReadFailed,
			Reason: utils.GetStringPointer(noQRCodeFound),
		})
	default:
		server_response.Responder.Respond(ctx.Ctx, http.StatusOK, dto.QRReadResponse{
			Status: dto.QRReadSuccess,
			Format: extraction.Format,
			Data:   extraction.Record,
		})
	}
}

// acceptUploads validates the form and stores every file. It writes the error
// response itself and reports false when the request cannot proceed.
func (c *KycController) acceptUploads(ctx *interfaces.ApplicationContext[dto.KycUploadDTO]) (entities.KycSubmission, bool) {
	if errs := validator.ValidatorInstance.ValidateStruct(ctx.Body); errs != nil {
		c.Metrics.IncrementRejectedUploads("missing_field")
		apperrors.ValidationFailedError(ctx.Ctx, errs)
		return entities.KycSubmission{}, false
	}
	if err := checkContentTypes(ctx.Body); err != nil {
		c.Metrics.IncrementRejectedUploads("invalid_content_type")
		apperrors.InvalidFileTypeError(ctx.Ctx, err)
		return entities.KycSubmission{}, false
	}

	submission, err := c.storeSubmission(ctx.RequestCtx, ctx.Body)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return entities.KycSubmission{}, false
	}
	return submission, true
}

// checkContentTypes trusts the declared part content type; file bytes are not sniffed.
func checkContentTypes(body *dto.KycUploadDTO) error {
	for _, image := range []*multipart.FileHeader{body.IDFront, body.Selfie, body.AddressProof} {
		if err := validator.ValidatorInstance.ValidateValue(contentType(image), "image_mime"); err != nil {
			return err
		}
	}
	if body.Video != nil {
		return validator.ValidatorInstance.ValidateValue(contentType(body.Video), "video_mime")
	}
	return nil
}

func contentType(file *multipart.FileHeader) string {
	return file.Header.Get("Content-Type")
}

func (c *KycController) storeSubmission(ctx context.Context, body *dto.KycUploadDTO) (entities.KycSubmission, error) {
	var submission entities.KycSubmission
	targets := []struct {
		file *multipart.FileHeader
		path *string
	}{
		{body.IDFront, &submission.IDImagePath},
		{body.Selfie, &submission.SelfiePath},
		{body.AddressProof, &submission.AddressProofPath},
		{body.Video, &submission.VideoPath},
	}

	stored := []string{}
	for _, target := range targets {
		if target.file == nil {
			continue
		}
		path, err := c.storeUpload(ctx, target.file)
		if err != nil {
			kyc_usecases.DiscardUploads(c.Uploads, stored)
			return entities.KycSubmission{}, err
		}
		*target.path = path
		stored = append(stored, path)
	}
	return submission, nil
}

func (c *KycController) storeUpload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	content, err := file.Open()
	if err != nil {
		return "", err
	}
	defer content.Close()
	return c.Uploads.Save(ctx, file.Filename, content)
}
