package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/SoyPhilips/BalanceAI-Pro/models"
	"github.com/SoyPhilips/BalanceAI-Pro/utils"
)

// AnalysisPrompt is tuned against the deployed models; keep it verbatim.
const AnalysisPrompt = "Analyze this image of food. Identify the dish and estimate the calories, protein, carbs, and fat. Return ONLY a JSON object (no markdown, no backticks) with these keys: dishName, calories (number), protein (string with unit), carbs (string with unit), fat (string with unit), healthyTips (short string)."

// DefaultModels is tried in order, fastest and cheapest first.
var DefaultModels = []string{
	"gemini-2.0-flash",
	"gemini-2.0-flash-lite",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
}

// InlineImage is a base64 image attached to a prompt.
type InlineImage struct {
	MIMEType string
	Data     string
}

type InferenceRequest struct {
	APIKey string
	Model  string
	Prompt string
	Image  InlineImage
}

// InferenceClient sends one prompt to one model.
type InferenceClient interface {
	Generate(ctx context.Context, req InferenceRequest) (string, error)
}

// CredentialProvider supplies the inference API key.
type CredentialProvider interface {
	APIKey() string
}

// StaticKey is a CredentialProvider backed by a fixed value.
type StaticKey string

func (k StaticKey) APIKey() string { return string(k) }

type AttemptOutcome string

const (
	OutcomeSuccess       AttemptOutcome = "success"
	OutcomeQuotaExceeded AttemptOutcome = "quotaExceeded"
	OutcomeNotFound      AttemptOutcome = "notFound"
	OutcomeOtherError    AttemptOutcome = "otherError"
)

// ModelAttempt records how one model call went.
type ModelAttempt struct {
	Model   string
	Outcome AttemptOutcome
}

// Step tells the fallback loop what to do after an attempt.
type Step int

const (
	StepDone Step = iota
	StepSkip
	StepAbort
)

type AnalysisConfig struct {
	Models  []string
	Timeout time.Duration
	Metrics *Metrics
}

type AnalysisService struct {
	client  InferenceClient
	creds   CredentialProvider
	models  []string
	timeout time.Duration
	metrics *Metrics
}

func NewAnalysisService(client InferenceClient, creds CredentialProvider, cfg AnalysisConfig) *AnalysisService {
	list := cfg.Models
	if len(list) == 0 {
		list = DefaultModels
	}
	return &AnalysisService{
		client:  client,
		creds:   creds,
		models:  append([]string(nil), list...),
		timeout: cfg.Timeout,
		metrics: cfg.Metrics,
	}
}

// AnalyzeFoodImage identifies the dish in image and estimates its
// nutrition. Models are tried one after another; see ClassifyAttempt for
// when the loop moves on.
func (s *AnalysisService) AnalyzeFoodImage(ctx context.Context, image []byte, mimeType string) (*models.NutritionRecord, error) {
	log := utils.LoggerFrom(ctx)

	mt, err := NormalizeImageType(mimeType)
	if err != nil {
		return nil, err
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidImage)
	}

	var key string
	if s.creds != nil {
		key = s.creds.APIKey()
	}
	if key == "" {
		return nil, ErrMissingCredential
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req := InferenceRequest{
		APIKey: key,
		Prompt: AnalysisPrompt,
		Image:  InlineImage{MIMEType: mt, Data: base64.StdEncoding.EncodeToString(image)},
	}

	var (
		text    string
		lastErr error
		done    bool
	)
	for _, model := range s.models {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTransport, err)
		}

		req.Model = model
		out, genErr := s.client.Generate(ctx, req)

		outcome, step := ClassifyAttempt(genErr)
		s.metrics.observeAttempt(ModelAttempt{Model: model, Outcome: outcome})
		entry := log.WithField("model", model).WithField("outcome", outcome)

		if step == StepDone {
			entry.Debug("model attempt succeeded")
			text, done = out, true
			break
		}
		if step == StepAbort {
			entry.WithError(genErr).Error("model attempt failed")
			return nil, attemptError(outcome, genErr)
		}
		entry.WithError(genErr).Warn("model unusable, trying next")
		lastErr = attemptError(outcome, genErr)
	}
	if !done {
		if lastErr == nil {
			return nil, ErrModelUnavailable
		}
		return nil, lastErr
	}

	rec, err := ParseNutrition(text)
	if err != nil {
		log.WithError(err).Warn("discarding unparsable model response")
		return nil, err
	}
	return rec, nil
}

var zeroLimit = regexp.MustCompile(`(?i)limit:\s*0(\D|$)`)

// ClassifyAttempt decides the fate of one model call from its error.
// Quota errors reporting a zero ceiling mean the model is not enabled for
// this key and are skipped; other quota errors abort. Unknown models are
// skipped. Anything else aborts.
func ClassifyAttempt(err error) (AttemptOutcome, Step) {
	if err == nil {
		return OutcomeSuccess, StepDone
	}

	var status int
	var ge *GeminiError
	if errors.As(err, &ge) {
		status = ge.Status
	}
	msg := strings.ToLower(err.Error())

	switch {
	case status == http.StatusTooManyRequests || strings.Contains(msg, "quota"):
		if zeroLimit.MatchString(msg) {
			return OutcomeQuotaExceeded, StepSkip
		}
		return OutcomeQuotaExceeded, StepAbort
	case status == http.StatusNotFound || strings.Contains(msg, "not found"):
		return OutcomeNotFound, StepSkip
	}
	return OutcomeOtherError, StepAbort
}

func attemptError(outcome AttemptOutcome, cause error) error {
	switch outcome {
	case OutcomeQuotaExceeded:
		return fmt.Errorf("%w: %w", ErrQuotaExhausted, cause)
	case OutcomeNotFound:
		return fmt.Errorf("%w: %w", ErrModelUnavailable, cause)
	}
	return fmt.Errorf("%w: %w", ErrTransport, cause)
}

var acceptedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/heic": true,
	"image/heif": true,
}

// NormalizeImageType returns the canonical media type for an accepted
// image, or ErrInvalidImage.
func NormalizeImageType(mimeType string) (string, error) {
	mt, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		mt = strings.TrimSpace(mimeType)
	}
	mt = strings.ToLower(mt)
	if mt == "image/jpg" {
		mt = "image/jpeg"
	}
	if !acceptedImageTypes[mt] {
		return "", fmt.Errorf("%w: unsupported type %q", ErrInvalidImage, mimeType)
	}
	return mt, nil
}

var codeFence = regexp.MustCompile("(?i)```(json)?")

// SanitizeModelText strips code fences and stray backticks.
func SanitizeModelText(text string) string {
	text = codeFence.ReplaceAllString(text, "")
	return strings.TrimSpace(strings.ReplaceAll(text, "`", ""))
}

// ParseNutrition decodes sanitized model text into a NutritionRecord.
func ParseNutrition(text string) (*models.NutritionRecord, error) {
	clean := SanitizeModelText(text)
	if !strings.HasPrefix(clean, "{") {
		return nil, fmt.Errorf("%w: not a JSON object", ErrUnparsableResponse)
	}
	var rec models.NutritionRecord
	if err := json.Unmarshal([]byte(clean), &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparsableResponse, err)
	}
	return &rec, nil
}
