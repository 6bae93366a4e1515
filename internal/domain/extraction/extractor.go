package extraction

import (
	"context"
	"encoding/base64"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
)

const (
	SystemPrompt = "You are an assistant that reads event posters and finds the date of the event."
	UserPrompt   = "Extract the event date from this poster. Respond with a single date in YYYY-MM-DD format. " +
		"If the poster shows no date, respond with exactly: no date found"

	MessageExtracted     = "Date extracted successfully"
	MessageNoDate        = "No date found in the image"
	MessageNotConfigured = "Date extraction is not configured"
	MessageEmptyImage    = "No image data provided"
	messageFailedPrefix  = "Failed to extract date: "

	fallbackMIME = "image/jpeg"
)

var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// VisionModel sends an instruction plus one image to a multimodal model and returns its reply text.
type VisionModel interface {
	Describe(ctx context.Context, systemPrompt, userPrompt, imageDataURL string) (string, error)
}

// Result is the outcome of one extraction. Date is nil unless Success is true.
type Result struct {
	Success bool    `json:"success"`
	Date    *string `json:"date"`
	Message string  `json:"message"`
}

// Extractor turns poster images into dates. It never returns an error: every
// failure is reported through Result.
type Extractor struct {
	model VisionModel
	log   zerolog.Logger
}

// NewExtractor builds an extractor. A nil model means no credential is configured.
func NewExtractor(model VisionModel, log zerolog.Logger) *Extractor {
	return &Extractor{
		model: model,
		log:   log.With().Str("component", "date-extractor").Logger(),
	}
}

// Configured reports whether a model is available.
func (e *Extractor) Configured() bool {
	return e != nil && e.model != nil
}

// Extract asks the model for the date printed on the poster.
func (e *Extractor) Extract(ctx context.Context, payload string) *Result {
	if !e.Configured() {
		return failed(MessageNotConfigured)
	}

	body := StripDataURIPrefix(payload)
	if strings.TrimSpace(body) == "" {
		return failed(MessageEmptyImage)
	}

	reply, err := e.model.Describe(ctx, SystemPrompt, UserPrompt, ToDataURL(body))
	if err != nil {
		e.log.Warn().Err(err).Msg("vision model call failed")
		return failed(messageFailedPrefix + err.Error())
	}

	date, ok := FindDate(reply)
	if !ok {
		e.log.Debug().Str("reply", reply).Msg("no date in model reply")
		return failed(MessageNoDate)
	}
	return &Result{Success: true, Date: &date, Message: MessageExtracted}
}

// StripDataURIPrefix drops everything up to and including the first comma, if any.
func StripDataURIPrefix(payload string) string {
	if idx := strings.Index(payload, ","); idx >= 0 {
		return payload[idx+1:]
	}
	return payload
}

// FindDate returns the first YYYY-MM-DD substring of text.
func FindDate(text string) (string, bool) {
	match := datePattern.FindString(text)
	return match, match != ""
}

// ToDataURL wraps a raw base64 body into a data URL with a sniffed image MIME type.
func ToDataURL(body string) string {
	body = strings.TrimSpace(body)
	return "data:" + detectImageMIME(body) + ";base64," + body
}

func detectImageMIME(body string) string {
	data, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(body)
		if err != nil {
			return fallbackMIME
		}
	}
	mime := mimetype.Detect(data).String()
	if !strings.HasPrefix(mime, "image/") {
		return fallbackMIME
	}
	return mime
}

func failed(message string) *Result {
	return &Result{Success: false, Message: message}
}
