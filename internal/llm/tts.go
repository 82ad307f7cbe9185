/**
* Name: 			tts.go
* Description: 		Google TTS 로 답변을 음성(MP3)으로 변환
 */

package llm

import (
	"context"
	"errors"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

type Synthesizer struct {
	client       *texttospeech.Client
	languageCode string
	logger       *zap.Logger
}

// TTS 클라이언트 초기화
func NewSynthesizer(ctx context.Context, credentialsFile, languageCode string, logger *zap.Logger) (*Synthesizer, error) {
	if credentialsFile == "" {
		return nil, errors.New("NewSynthesizer(): GOOGLE_APPLICATION_CREDENTIALS is not set")
	}
	client, err := texttospeech.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, errors.New("NewSynthesizer(): failed to create TTS client: " + err.Error())
	}
	return &Synthesizer{client: client, languageCode: languageCode, logger: logger}, nil
}

// 텍스트를 오디오로 변환
func (t *Synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: t.languageCode,
			SsmlGender:   texttospeechpb.SsmlVoiceGender_NEUTRAL,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := t.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		t.logger.Warn("Synthesizer.Synthesize(): SynthesizeSpeech failed", zap.Error(err))
		return nil, err
	}
	t.logger.Debug("Synthesizer.Synthesize(): done", zap.Int("bytes", len(resp.AudioContent)))
	return resp.AudioContent, nil
}

// TTS 클라이언트 종료
func (t *Synthesizer) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}
