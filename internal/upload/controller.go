package upload

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/mdobak/go-xerrors"

	"github.com/ytget/image-predictor/internal/locale"
	"github.com/ytget/image-predictor/internal/model"
	"github.com/ytget/image-predictor/internal/predict"
	"github.com/ytget/image-predictor/internal/preview"
)

// Controller handles form submissions
type Controller struct {
	regions   Regions
	predictor predict.Predictor
	previews  preview.Loader
	messages  Messages
	logger    *slog.Logger
	onUpdate  func(*model.Submission) // callback for status updates
}

// NewController creates a controller bound to the given display regions
func NewController(regions Regions, predictor predict.Predictor, previews preview.Loader, messages Messages, logger *slog.Logger) *Controller {
	return &Controller{
		regions:   regions,
		predictor: predictor,
		previews:  previews,
		messages:  messages,
		logger:    logger,
	}
}

// SetUpdateCallback sets the callback invoked with a snapshot on every state change
func (c *Controller) SetUpdateCallback(callback func(*model.Submission)) {
	c.onUpdate = callback
}

// Submit runs one submission to completion and returns its final state.
//
// Submissions are not serialized: when two overlap, whichever finishes last
// owns the display regions. There is no cancellation of the earlier one.
func (c *Controller) Submit(ctx context.Context, file *model.SelectedFile) *model.Submission {
	sub := model.NewSubmission(file)

	c.transition(sub, model.SubmissionStatusValidating)
	c.hideMessages()

	if file == nil {
		c.fail(ctx, sub, predict.NewNoFileError())
		return sub
	}

	c.regions.Spinner.Show()
	sub.InFlight = true

	c.transition(sub, model.SubmissionStatusSending)
	log.Printf("Submitting %s: file=%s size=%d endpoint=%s",
		sub.ID, sub.GetDisplayName(), file.Size(), c.predictor.Endpoint())

	raw, err := c.predictor.Send(ctx, file)

	c.regions.Spinner.Hide()
	sub.InFlight = false

	if err != nil {
		c.fail(ctx, sub, err)
		return sub
	}

	c.transition(sub, model.SubmissionStatusParsing)

	result, err := predict.Interpret(raw)
	if err != nil {
		c.fail(ctx, sub, err)
		return sub
	}

	best := result.Best()
	sub.Best = &best
	c.render(result, best)
	c.showPreview(ctx, sub)

	c.transition(sub, model.SubmissionStatusRendered)
	log.Printf("Submission %s rendered: %s %s (%s)", sub.ID, best.ClassName, best.Percent(), sub.Elapsed())
	return sub
}

// ToggleDetails flips the visibility of the details panel
func (c *Controller) ToggleDetails() {
	if c.regions.Details.Visible() {
		c.regions.Details.Hide()
	} else {
		c.regions.Details.Show()
	}
}

// render fills the summary and details regions and shows the result
func (c *Controller) render(result *predict.Result, best model.PredictionItem) {
	c.regions.Summary.SetText(c.messages.Format(locale.KeySummaryFormat, best.ClassName, best.Percent()))
	c.regions.Details.SetText(result.Details())
	c.regions.Summary.Show()
}

// showPreview reads the file as a data URL and displays it. Failures are only
// logged: the prediction is already on screen.
func (c *Controller) showPreview(ctx context.Context, sub *model.Submission) {
	url, err := c.previews.DataURL(ctx, sub.File)
	if err == nil {
		err = c.regions.Preview.SetDataURL(url)
	}
	if err != nil {
		c.logger.WarnContext(ctx, "preview unavailable",
			slog.String("submission", sub.ID),
			slog.Any("error", xerrors.New(err)),
		)
		return
	}
	c.regions.Preview.Show()
}

// hideMessages clears result, preview and error state from a previous submission
func (c *Controller) hideMessages() {
	c.regions.Summary.Hide()
	c.regions.Error.Hide()
	c.regions.Preview.Hide()
	c.regions.Details.Hide()
	c.regions.Summary.SetText("")
	c.regions.Details.SetText("")
}

// fail is the single error path: log, show the message, hide the result
func (c *Controller) fail(ctx context.Context, sub *model.Submission, err error) {
	message := c.ErrorMessage(err)

	c.logger.ErrorContext(ctx, "submission failed",
		slog.String("submission", sub.ID),
		slog.String("file", sub.GetDisplayName()),
		slog.Any("error", xerrors.New(err)),
	)

	c.regions.Spinner.Hide()
	sub.InFlight = false
	c.regions.Summary.Hide()
	c.regions.Error.SetText(message)
	c.regions.Error.Show()

	sub.LastError = message
	c.transition(sub, model.SubmissionStatusError)
}

// ErrorMessage converts any submission error into the text shown to the user
func (c *Controller) ErrorMessage(err error) string {
	var (
		validationErr *predict.ValidationError
		serverErr     *predict.ServerError
		malformedErr  *predict.MalformedResponseError
		networkErr    *predict.NetworkError
	)

	switch {
	case errors.As(err, &validationErr):
		return c.messages.GetText(locale.KeySelectFileFirst)
	case errors.As(err, &serverErr):
		return c.messages.Format(locale.KeyErrorPrefix, c.messages.Format(locale.KeyServerError,
			serverErr.StatusCode, serverErr.StatusText, serverErr.Body))
	case errors.As(err, &malformedErr):
		if malformedErr.Reason == predict.ReasonInvalidJSON {
			return c.messages.Format(locale.KeyErrorPrefix, c.messages.Format(locale.KeyInvalidJSON, malformedErr.Body))
		}
		return c.messages.Format(locale.KeyInvalidStructure, malformedErr.Body)
	case errors.As(err, &networkErr):
		return c.messages.Format(locale.KeyErrorPrefix, c.messages.Format(locale.KeyNetworkError, networkErr.Err.Error()))
	default:
		return c.messages.Format(locale.KeyErrorPrefix, c.messages.Format(locale.KeyUnexpectedError, err.Error()))
	}
}

// transition advances the submission and notifies the observer
func (c *Controller) transition(sub *model.Submission, next model.SubmissionStatus) {
	if err := sub.Transition(next); err != nil {
		log.Printf("Submission %s: %v", sub.ID, err)
		return
	}
	if c.onUpdate != nil {
		c.onUpdate(sub.Snapshot())
	}
}
