package routev1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"kyc.gateman.io/application/constants"
	"kyc.gateman.io/application/controller"
	repository_mocks "kyc.gateman.io/application/repository/types/mocks"
	"kyc.gateman.io/application/services/document"
	kyc_mocks "kyc.gateman.io/application/usecases/kyc/types/mocks"
	"kyc.gateman.io/application/utils"
	"kyc.gateman.io/entities"
	file_upload_mocks "kyc.gateman.io/infrastructure/file_upload/types/mocks"
	queue_tasks "kyc.gateman.io/infrastructure/message_queue/tasks"
	mq_types "kyc.gateman.io/infrastructure/message_queue/types"
	mq_mocks "kyc.gateman.io/infrastructure/message_queue/types/mocks"
	middlewares "kyc.gateman.io/infrastructure/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type formFile struct {
	field       string
	filename    string
	contentType string
}

var completeForm = []formFile{
	{field: "id_front", filename: "front.png", contentType: "image/png"},
	{field: "selfie", filename: "selfie.jpg", contentType: "image/jpeg"},
	{field: "address_proof", filename: "bill.png", contentType: "image/png"},
}

var storedSubmission = entities.KycSubmission{
	IDImagePath:      "uploads/front.png",
	SelfiePath:       "uploads/selfie.jpg",
	AddressProofPath: "uploads/bill.png",
}

type routeFixture struct {
	pipeline   *kyc_mocks.MockPipelineRunnerType
	qr         *kyc_mocks.MockQRReaderType
	uploads    *file_upload_mocks.MockFileStoreType
	jobs       *repository_mocks.MockKycJobRepoType
	queue      *mq_mocks.MockTaskQueueBroker
	controller *controller.KycController
}

func newRouteFixture(t *testing.T) *routeFixture {
	ctrl := gomock.NewController(t)
	f := &routeFixture{
		pipeline: kyc_mocks.NewMockPipelineRunnerType(ctrl),
		qr:       kyc_mocks.NewMockQRReaderType(ctrl),
		uploads:  file_upload_mocks.NewMockFileStoreType(ctrl),
		jobs:     repository_mocks.NewMockKycJobRepoType(ctrl),
		queue:    mq_mocks.NewMockTaskQueueBroker(ctrl),
	}
	f.controller = &controller.KycController{
		Pipeline: f.pipeline,
		QR:       f.qr,
		Uploads:  f.uploads,
	}
	return f
}

func (f *routeFixture) enableAsync() {
	f.controller.Jobs = f.jobs
	f.controller.Queue = f.queue
}

func (f *routeFixture) expectStored(files []formFile) {
	for _, file := range files {
		f.uploads.EXPECT().Save(gomock.Any(), file.filename, gomock.Any()).Return("uploads/"+file.filename, nil)
	}
}

func (f *routeFixture) serve(t *testing.T, method string, path string, files []formFile) (int, map[string]any) {
	router := gin.New()
	router.Use(middlewares.UserAgentMiddleware())
	KycRouter(router.Group(""), f.controller)

	var req *http.Request
	if files == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		body, contentType := multipartBody(t, files)
		req = httptest.NewRequest(method, path, body)
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload), rec.Body.String())
	return rec.Code, payload
}

func multipartBody(t *testing.T, files []formFile) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, file := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, file.field, file.filename))
		header.Set("Content-Type", file.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("content of " + file.filename))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadKycVerified(t *testing.T) {
	f := newRouteFixture(t)
	f.expectStored(completeForm)
	f.pipeline.EXPECT().Run(gomock.Any(), storedSubmission).Return(&entities.KycVerdict{
		RunID:       "run-1",
		FinalStatus: entities.KYCVerified,
		DocumentData: &entities.IdentityRecord{
			Name:       utils.GetStringPointer("Asha Verma"),
			AddressRaw: "12 MG Road, Pune",
		},
		AddressVerification: entities.NewScoreResult(80, entities.MatchVerified),
		SelfieVerification:  entities.NewDistanceResult(0.31, entities.MatchVerified),
	}, nil)

	code, payload := f.serve(t, http.MethodPost, "/kyc/upload", completeForm)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "run-1", payload["run_id"])
	assert.Equal(t, "VERIFIED", payload["final_status"])
	assert.Equal(t, map[string]any{"name": "Asha Verma", "address": "12 MG Road, Pune"}, payload["aadhaar"])
	assert.Nil(t, payload["video_verification"])
	assert.Contains(t, payload, "review_reasons")
	assert.Nil(t, payload["review_reasons"])
	assert.NotContains(t, payload, "reason")
}

func TestUploadKycRelaysReviewReasons(t *testing.T) {
	f := newRouteFixture(t)
	f.expectStored(completeForm)
	f.pipeline.EXPECT().Run(gomock.Any(), storedSubmission).Return(&entities.KycVerdict{
		RunID:         "run-2",
		FinalStatus:   entities.KYCReviewRequired,
		ReviewReasons: []entities.ReasonCode{entities.ReasonAddressMismatch},
	}, nil)

	code, payload := f.serve(t, http.MethodPost, "/kyc/upload", completeForm)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"ADDRESS_MISMATCH"}, payload["review_reasons"])
}

func TestUploadKycRejectsInvalidFileType(t *testing.T) {
	f := newRouteFixture(t)
	form := []formFile{
		completeForm[0],
		{field: "selfie", filename: "selfie.pdf", contentType: "application/pdf"},
		completeForm[2],
	}

	code, payload := f.serve(t, http.MethodPost, "/kyc/upload", form)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid file type: application/pdf", payload["detail"])
}

func TestUploadKycRejectsInvalidVideoType(t *testing.T) {
	f := newRouteFixture(t)
	form := append(append([]formFile{}, completeForm...), formFile{field: "video", filename: "clip.avi", contentType: "video/x-msvideo"})

	code, payload := f.serve(t, http.MethodPost, "/kyc/upload", form)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid file type: video/x-msvideo", payload["detail"])
}

func TestUploadKycRequiresEveryImage(t *testing.T) {
	f := newRouteFixture(t)

	code, payload := f.serve(t, http.MethodPost, "/kyc/upload", []formFile{completeForm[0], completeForm[2]})

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "selfie is required", payload["detail"])
	assert.Equal(t, []any{"selfie is required"}, payload["errors"])
}

func TestUploadKycPipelineError(t *testing.T) {
	f := newRouteFixture(t)
	f.expectStored(completeForm)
	f.pipeline.EXPECT().Run(gomock.Any(), storedSubmission).Return(nil, errors.New("tesseract: not installed"))

	code, payload := f.serve(t, http.MethodPost, "/kyc/upload", completeForm)

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "tesseract: not installed", payload["error"])
	assert.Equal(t, constants.PIPELINE_FAILURE_HINT, payload["hint"])
}

func TestUploadKycDiscardsStoredFilesWhenASaveFails(t *testing.T) {
	f := newRouteFixture(t)
	f.uploads.EXPECT().Save(gomock.Any(), "front.png", gomock.Any()).Return("uploads/front.png", nil)
	f.uploads.EXPECT().Save(gomock.Any(), "selfie.jpg", gomock.Any()).Return("", errors.New("disk full"))
	f.uploads.EXPECT().Delete("uploads/front.png").Return(nil)

	code, payload := f.serve(t, http.MethodPost, "/kyc/upload", completeForm)

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", payload["detail"])
}

func TestUploadKycAsyncDisabled(t *testing.T) {
	f := newRouteFixture(t)

	code, payload := f.serve(t, http.MethodPost, "/kyc/upload/async", completeForm)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.NotEmpty(t, payload["detail"])
}

func TestUploadKycAsyncQueuesJob(t *testing.T) {
	f := newRouteFixture(t)
	f.enableAsync()
	f.expectStored(completeForm)

	var jobID string
	f.jobs.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, job *entities.KycJob) error {
		assert.Equal(t, entities.JobPending, job.Status)
		jobID = job.ID
		return nil
	})
	f.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, task mq_types.QueueTask) error {
		assert.Equal(t, queue_tasks.HandleKycVerifyTaskName, task.Name)
		assert.Equal(t, jobID, task.ID)
		var payload queue_tasks.KycVerifyPayload
		require.NoError(t, json.Unmarshal(task.Payload, &payload))
		assert.Equal(t, jobID, payload.JobID)
		assert.Equal(t, storedSubmission, payload.Submission)
		return nil
	})

	code, payload := f.serve(t, http.MethodPost, "/kyc/upload/async", completeForm)

	assert.Equal(t, http.StatusAccepted, code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, jobID, payload["job_id"])
}

func TestUploadKycAsyncDiscardsUploadsWhenEnqueueFails(t *testing.T) {
	f := newRouteFixture(t)
	f.enableAsync()
	f.expectStored(completeForm)
	f.jobs.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	f.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	for _, path := range storedSubmission.Paths() {
		f.uploads.EXPECT().Delete(path).Return(nil)
	}

	code, _ := f.serve(t, http.MethodPost, "/kyc/upload/async", completeForm)

	assert.Equal(t, http.StatusInternalServerError, code)
}

func TestFetchKycJob(t *testing.T) {
	f := newRouteFixture(t)
	f.enableAsync()
	f.jobs.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)
	f.jobs.EXPECT().FindByID(gomock.Any(), "job-1").Return(&entities.KycJob{
		ID:     "job-1",
		Status: entities.JobCompleted,
		Result: &entities.KycVerdict{RunID: "run-1", FinalStatus: entities.KYCVerified},
	}, nil)

	code, payload := f.serve(t, http.MethodGet, "/kyc/jobs/missing", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "job missing does not exist", payload["detail"])

	code, payload = f.serve(t, http.MethodGet, "/kyc/jobs/job-1", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "job-1", payload["job_id"])
	assert.Equal(t, "completed", payload["status"])
	assert.Equal(t, "VERIFIED", payload["result"].(map[string]any)["final_status"])
}

func TestReadQR(t *testing.T) {
	front := []formFile{completeForm[0]}
	tests := []struct {
		name       string
		extraction *document.QRExtraction
		err        error
		want       map[string]any
	}{
		{
			name:       "no code on the image",
			extraction: nil,
			want:       map[string]any{"status": "FAILED", "reason": "NO_QR_CODE_FOUND"},
		},
		{
			name: "malformed structured payload",
			err:  &document.ParseError{Err: errors.New("XML syntax error")},
			want: map[string]any{"status": "FAILED", "reason": "MALFORMED_QR"},
		},
		{
			name: "structured payload",
			extraction: &document.QRExtraction{
				Format: entities.QRFormatStructured,
				Record: &entities.IdentityRecord{
					Type:   entities.AadhaarDocument,
					Source: entities.StructuredQRSource,
					Name:   utils.GetStringPointer("Asha Verma"),
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouteFixture(t)
			f.controller.DiscardUploads = true
			f.expectStored(front)
			f.qr.EXPECT().ReadQR(gomock.Any(), "uploads/front.png").Return(tt.extraction, tt.err)
			f.uploads.EXPECT().Delete("uploads/front.png").Return(nil)

			code, payload := f.serve(t, http.MethodPost, "/kyc/qr", front)

			assert.Equal(t, http.StatusOK, code)
			if tt.want != nil {
				assert.Equal(t, tt.want, payload)
				return
			}
			assert.Equal(t, "SUCCESS", payload["status"])
			assert.Equal(t, "structured", payload["format"])
			assert.Equal(t, "Asha Verma", payload["data"].(map[string]any)["name"])
		})
	}
}
