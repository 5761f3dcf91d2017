package startup

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"kyc.gateman.io/application/controller"
	"kyc.gateman.io/application/repository"
	"kyc.gateman.io/application/services/document"
	"kyc.gateman.io/application/services/face"
	"kyc.gateman.io/application/services/video"
	kyc_usecases "kyc.gateman.io/application/usecases/kyc"
	"kyc.gateman.io/infrastructure/barcode"
	"kyc.gateman.io/infrastructure/biometric"
	"kyc.gateman.io/infrastructure/database"
	"kyc.gateman.io/infrastructure/env"
	fileupload "kyc.gateman.io/infrastructure/file_upload"
	"kyc.gateman.io/infrastructure/imaging/opencv"
	"kyc.gateman.io/infrastructure/logger"
	messagequeue "kyc.gateman.io/infrastructure/message_queue"
	queue_tasks "kyc.gateman.io/infrastructure/message_queue/tasks"
	"kyc.gateman.io/infrastructure/metrics"
	"kyc.gateman.io/infrastructure/ocr"
	"kyc.gateman.io/infrastructure/speech"
)

// Services holds everything the HTTP server needs once startup has finished.
type Services struct {
	KycController *controller.KycController
	Metrics       *metrics.Metrics
	Pipeline      *kyc_usecases.Pool

	closers []func() error
}

// Used to start services such as OCR engines, models, caches and queues.
func StartServices(ctx context.Context, cfg *env.Config) (services *Services, err error) {
	services = &Services{}
	defer func() {
		if err != nil {
			CleanUpServices(services)
			services = nil
		}
	}()

	services.Metrics = metrics.New(prometheus.DefaultRegisterer)

	recognizer, err := ocr.NewTextRecognizer(ctx, cfg)
	if err != nil {
		return services, err
	}
	services.closers = append(services.closers, recognizer.Close)
	documents := &document.Extractor{
		Barcodes:     barcode.NewZXingDecoder(),
		OCR:          recognizer,
		Preprocessor: opencv.NewDocumentPreprocessor(),
	}

	faceModel, err := biometric.NewLocalFaceModel(cfg)
	if err != nil {
		return services, err
	}
	services.closers = append(services.closers, faceModel.Close)

	transcriber, err := speech.NewTranscriber(ctx, cfg)
	if err != nil {
		return services, err
	}
	services.closers = append(services.closers, transcriber.Close)

	uploads, err := fileupload.NewFileStore(cfg)
	if err != nil {
		return services, err
	}

	orchestrator := &kyc_usecases.Orchestrator{
		Documents:        documents,
		Selfies:          &face.Verifier{Model: faceModel, Threshold: cfg.FaceDistanceThreshold},
		Videos:           &video.Verifier{Audio: speech.NewAudioExtractor(cfg), Transcriber: transcriber, Threshold: cfg.VideoMatchThreshold},
		AddressThreshold: cfg.AddressMatchThreshold,
		Metrics:          services.Metrics,
	}
	services.Pipeline = kyc_usecases.NewPool(&kyc_usecases.UploadVerifier{
		Pipeline:       orchestrator,
		Uploads:        uploads,
		DiscardUploads: cfg.DeleteUploadsAfterRun,
	}, cfg.WorkerPoolSize)

	services.KycController = &controller.KycController{
		Pipeline:       services.Pipeline,
		QR:             documents,
		Uploads:        uploads,
		Metrics:        services.Metrics,
		DiscardUploads: cfg.DeleteUploadsAfterRun,
	}

	if !cfg.AsyncEnabled() {
		logger.Info("REDIS_ADDR not set, asynchronous verification disabled")
		return services, nil
	}
	cache, err := database.SetUpCache(ctx, cfg)
	if err != nil {
		return services, err
	}
	services.closers = append(services.closers, cache.Client.Close)
	jobs := repository.NewKycJobRepo(cache, cfg.AsyncJobTTL)

	broker, err := messagequeue.StartQueue(cfg, &queue_tasks.KycVerifyHandler{Pipeline: services.Pipeline, Jobs: jobs})
	if err != nil {
		return services, err
	}
	services.closers = append(services.closers, broker.Shutdown)
	services.KycController.Jobs = jobs
	services.KycController.Queue = broker
	logger.Info("asynchronous verification enabled", logger.LoggerOptions{
		Key:  "redis",
		Data: cfg.RedisAddr,
	})
	return services, nil
}

// Used to clean up after services that have been shutdown. Resources are
// released in reverse start order.
func CleanUpServices(services *Services) {
	if services == nil {
		return
	}
	var errs error
	for i := len(services.closers) - 1; i >= 0; i-- {
		errs = errors.Join(errs, services.closers[i]())
	}
	services.closers = nil
	if errs != nil {
		logger.Error("failed to release services", logger.LoggerOptions{
			Key:  "error",
			Data: errs,
		})
	}
}
