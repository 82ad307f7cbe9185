/**
* Name: 			stt.go
* Description: 		Google STT 로 음성 질문을 텍스트로 변환
* Workflow: 		Recognizer 생성, 녹음 전체 전송, 최상위 결과 반환
 */

package llm

import (
	"context"
	"errors"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// NoSpeechReply is shown to the user when nothing could be recognised.
const NoSpeechReply = "Sorry, couldn't understand."

var ErrNoSpeech = errors.New("no speech recognised")

type Recognizer struct {
	client       *speech.Client
	languageCode string
	logger       *zap.Logger
}

// STT Recognizer 초기화
func NewRecognizer(ctx context.Context, credentialsFile, languageCode string, logger *zap.Logger) (*Recognizer, error) {
	if credentialsFile == "" {
		return nil, errors.New("NewRecognizer(): GOOGLE_APPLICATION_CREDENTIALS is not set")
	}
	client, err := speech.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, errors.New("NewRecognizer(): failed to create speech client: " + err.Error())
	}
	return &Recognizer{client: client, languageCode: languageCode, logger: logger}, nil
}

// Transcribe expects 16 kHz mono LINEAR16 audio.
func (r *Recognizer) Transcribe(ctx context.Context, audio []byte) (string, error) {
	resp, err := r.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   16000,
			AudioChannelCount: 1,
			LanguageCode:      r.languageCode,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		r.logger.Warn("Recognizer.Transcribe(): Recognize failed", zap.Error(err))
		return "", err
	}

	var parts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			parts = append(parts, result.Alternatives[0].Transcript)
		}
	}
	text := strings.TrimSpace(strings.Join(parts, " "))
	if text == "" {
		return "", ErrNoSpeech
	}
	r.logger.Debug("Recognizer.Transcribe(): recognised", zap.String("text", text))
	return text, nil
}

func (r *Recognizer) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
