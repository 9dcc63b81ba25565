package voice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/status"

	"github.com/abhisek/irab/internal/config"
	"github.com/abhisek/irab/internal/logger"
)

// Capturer records one short utterance as WAV bytes.
type Capturer interface {
	Capture(ctx context.Context) ([]byte, error)
}

// CommandCapturer runs an external recorder (arecord, sox ...) that writes
// WAV to stdout.
type CommandCapturer struct {
	command []string
}

func NewCommandCapturer(command []string) *CommandCapturer {
	return &CommandCapturer{command: command}
}

func (c *CommandCapturer) Capture(ctx context.Context) ([]byte, error) {
	if len(c.command) == 0 {
		return nil, errors.New("no capture command")
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.command[0], c.command[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", c.command[0], err, msg)
		}
		return nil, fmt.Errorf("%s: %w", c.command[0], err)
	}
	return stdout.Bytes(), nil
}

type recognizeFunc func(ctx context.Context, req *speechpb.RecognizeRequest) (*speechpb.RecognizeResponse, error)

// GCPRecognizer captures audio locally and transcribes it with Google Cloud
// Speech-to-Text.
type GCPRecognizer struct {
	capture   Capturer
	locale    string
	recognize recognizeFunc
	close     func() error
}

// NewGCPRecognizer builds a speech client from the environment credentials.
func NewGCPRecognizer(ctx context.Context, capture Capturer, locale string) (*GCPRecognizer, error) {
	client, err := speech.NewClient(ctx, clientOptionsFromEnv()...)
	if err != nil {
		return nil, fmt.Errorf("speech client: %w", err)
	}
	return &GCPRecognizer{
		capture: capture,
		locale:  locale,
		recognize: func(ctx context.Context, req *speechpb.RecognizeRequest) (*speechpb.RecognizeResponse, error) {
			return client.Recognize(ctx, req)
		},
		close: client.Close,
	}, nil
}

func (g *GCPRecognizer) Recognize(ctx context.Context) (string, error) {
	audio, err := g.capture.Capture(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return "", &RecognitionError{Code: CodeAborted, Err: ctx.Err()}
		}
		return "", &RecognitionError{Code: CodeAudioCapture, Err: err}
	}
	if len(audio) == 0 {
		return "", &RecognitionError{Code: CodeNoSpeech}
	}

	// WAV headers carry the sample rate, so only the encoding is set.
	resp, err := g.recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:     speechpb.RecognitionConfig_LINEAR16,
			LanguageCode: g.locale,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", &RecognitionError{Code: CodeAborted, Err: ctx.Err()}
		}
		return "", &RecognitionError{Code: status.Code(err).String(), Err: err}
	}

	results := resp.GetResults()
	if len(results) == 0 || len(results[0].GetAlternatives()) == 0 {
		return "", &RecognitionError{Code: CodeNoSpeech}
	}
	return results[0].GetAlternatives()[0].GetTranscript(), nil
}

func (g *GCPRecognizer) Close() error {
	if g.close == nil {
		return nil
	}
	return g.close()
}

// Detect selects the recognizer for this run. It returns nil when no
// capture command is configured or the speech client cannot be built.
func Detect(ctx context.Context, cfg config.Config, log *logger.Logger) Recognizer {
	if len(cfg.CaptureCommand) == 0 {
		log.Info("voice input disabled", "reason", "no capture command")
		return nil
	}
	rec, err := NewGCPRecognizer(ctx, NewCommandCapturer(cfg.CaptureCommand), cfg.Locale)
	if err != nil {
		log.Warn("voice input disabled", "error", err)
		return nil
	}
	return rec
}

func clientOptionsFromEnv() []option.ClientOption {
	creds := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"))
	if creds == "" {
		creds = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	if creds == "" {
		return nil
	}
	if strings.HasPrefix(creds, "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(creds))}
	}
	return []option.ClientOption{option.WithCredentialsFile(creds)}
}
