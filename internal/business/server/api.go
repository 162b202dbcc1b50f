package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openkcm/interview-manager/internal/interview"
	"github.com/openkcm/interview-manager/internal/openapi"
	"github.com/openkcm/interview-manager/internal/question"
	"github.com/openkcm/interview-manager/internal/report"
	"github.com/openkcm/interview-manager/internal/serviceerr"
)

// Interviews is the part of the interview service exposed over HTTP.
type Interviews interface {
	Start(ctx context.Context, p interview.StartParams) (interview.StartResult, error)
	SubmitAnswer(ctx context.Context, id, text string) (interview.AnswerResult, error)
	SubmitAudioAnswer(ctx context.Context, id string, audio []byte, mimeType string) (interview.AnswerResult, error)
	Status(ctx context.Context, id string) (interview.Status, error)
	Summary(ctx context.Context, id string) (string, error)
	Transcript(ctx context.Context, id string) (interview.Session, error)
	Report(ctx context.Context, id string) (report.Report, error)
	Speak(ctx context.Context, text string) ([]byte, error)
	Reset(ctx context.Context, id string) error
}

var _ Interviews = (*interview.Service)(nil)

// apiServer is an implementation of the OpenAPI interface.
type apiServer struct {
	interviews    Interviews
	maxAudioBytes int64
	middlewares   []openapi.StrictMiddlewareFunc
}

// Ensure apiServer implements [openapi.StrictServerInterface]
var _ openapi.StrictServerInterface = (*apiServer)(nil)

func newAPIServer(interviews Interviews, maxAudioBytes int64, middlewares ...openapi.StrictMiddlewareFunc) *apiServer {
	return &apiServer{
		interviews:    interviews,
		maxAudioBytes: maxAudioBytes,
		middlewares:   middlewares,
	}
}

// Handler returns the router of the public API. Undecodable requests and
// missing parameters are answered with an invalid_request error model.
func (s *apiServer) Handler() http.Handler {
	strictHandler := openapi.NewStrictHandlerWithOptions(s, s.middlewares, openapi.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  rejectRequest,
		ResponseErrorHandlerFunc: failResponse,
	})

	return openapi.HandlerWithOptions(strictHandler, openapi.StdHTTPServerOptions{
		ErrorHandlerFunc: rejectRequest,
	})
}

// Start implements openapi.StrictServerInterface.
func (s *apiServer) Start(ctx context.Context, request openapi.StartRequestObject) (openapi.StartResponseObject, error) {
	req := valueOf(request.Body)

	rounds := interview.DefaultRounds
	if req.Rounds != nil {
		rounds = *req.Rounds
	}

	res, err := s.interviews.Start(ctx, interview.StartParams{
		ID:         req.SessionId,
		MaxRounds:  rounds,
		Difficulty: question.Difficulty(valueOf(req.Difficulty)),
		Category:   question.Category(valueOf(req.Category)),
	})
	if err != nil {
		body, status := errorModel(ctx, err)
		return openapi.StartdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return openapi.Start200JSONResponse{Question: res.Question, Round: res.Round}, nil
}

// Answer implements openapi.StrictServerInterface. The chat style
// user_message field is used when text is empty.
func (s *apiServer) Answer(ctx context.Context, request openapi.AnswerRequestObject) (openapi.AnswerResponseObject, error) {
	req := valueOf(request.Body)

	text := valueOf(req.Text)
	if text == "" {
		text = valueOf(req.UserMessage)
	}

	res, err := s.interviews.SubmitAnswer(ctx, req.SessionId, text)
	if err != nil {
		body, status := errorModel(ctx, err)
		return openapi.AnswerdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return openapi.Answer200JSONResponse(toAnswerResult(res)), nil
}

// AnswerAudio implements openapi.StrictServerInterface.
func (s *apiServer) AnswerAudio(ctx context.Context, request openapi.AnswerAudioRequestObject) (openapi.AnswerAudioResponseObject, error) {
	mimeType, audio, err := s.readAudio(request.ContentType, request.Body)
	if err != nil {
		body, status := errorModel(ctx, err)
		return openapi.AnswerAudiodefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	res, err := s.interviews.SubmitAudioAnswer(ctx, request.Params.SessionId, audio, mimeType)
	if err != nil {
		body, status := errorModel(ctx, err)
		return openapi.AnswerAudiodefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return openapi.AnswerAudio200JSONResponse(toAnswerResult(res)), nil
}

// Status implements openapi.StrictServerInterface.
func (s *apiServer) Status(ctx context.Context, request openapi.StatusRequestObject) (openapi.StatusResponseObject, error) {
	st, err := s.interviews.Status(ctx, request.Params.SessionId)
	if err != nil {
		body, status := errorModel(ctx, err)
		return openapi.StatusdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return openapi.Status200JSONResponse{
		CurrentQuestion: st.CurrentQuestion,
		Round:           st.Round,
		MaxRounds:       st.MaxRounds,
		Done:            st.Done,
		WaitingForInput: st.WaitingForInput,
	}, nil
}

// Summary implements openapi.StrictServerInterface.
func (s *apiServer) Summary(ctx context.Context, request openapi.SummaryRequestObject) (openapi.SummaryResponseObject, error) {
	summary, err := s.interviews.Summary(ctx, request.Params.SessionId)
	if err != nil {
		body, status := errorModel(ctx, err)
		return openapi.SummarydefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return openapi.Summary200JSONResponse{Summary: summary}, nil
}

// Transcript implements openapi.StrictServerInterface.
func (s *apiServer) Transcript(ctx context.Context, request openapi.TranscriptRequestObject) (openapi.TranscriptResponseObject, error) {
	sess, err := s.interviews.Transcript(ctx, request.Params.SessionId)
	if err != nil {
		body, status := errorModel(ctx, err)
		return openapi.TranscriptdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	turns := make([]openapi.Turn, 0, len(sess.Transcript))
	for _, t := range sess.Transcript {
		turns = append(turns, openapi.Turn{Asker: string(t.Asker), Text: t.Text})
	}

	return openapi.Transcript200JSONResponse{
		Id:              sess.ID,
		Phase:           string(sess.Phase),
		Round:           sess.Round,
		MaxRounds:       sess.MaxRounds,
		Difficulty:      string(sess.Difficulty),
		Category:        string(sess.Category),
		UsedQuestions:   sess.UsedQuestions,
		CurrentQuestion: sess.CurrentQuestion,
		Transcript:      turns,
		Evaluations:     sess.Evaluations,
		Feedbacks:       sess.Feedbacks,
		PendingAnswer:   sess.PendingAnswer,
		Summary:         sess.Summary,
		CreatedAt:       sess.CreatedAt,
		UpdatedAt:       sess.UpdatedAt,
	}, nil
}

// Report implements openapi.StrictServerInterface.
func (s *apiServer) Report(ctx context.Context, request openapi.ReportRequestObject) (openapi.ReportResponseObject, error) {
	rep, err := s.interviews.Report(ctx, request.Params.SessionId)
	if err != nil {
		body, status := errorModel(ctx, err)
		return openapi.ReportdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	turns := make([]openapi.Turn, 0, len(rep.Transcript))
	for _, t := range rep.Transcript {
		turns = append(turns, openapi.Turn{Asker: t.Asker, Text: t.Text})
	}

	return openapi.Report200JSONResponse{
		Id:          rep.ID,
		SessionId:   rep.SessionID,
		Category:    rep.Category,
		Difficulty:  rep.Difficulty,
		Rounds:      rep.Rounds,
		Questions:   rep.Questions,
		Evaluations: rep.Evaluations,
		Feedbacks:   rep.Feedbacks,
		Summary:     rep.Summary,
		Transcript:  turns,
		StartedAt:   rep.StartedAt,
		CompletedAt: rep.CompletedAt,
	}, nil
}

// Speech implements openapi.StrictServerInterface.
func (s *apiServer) Speech(ctx context.Context, request openapi.SpeechRequestObject) (openapi.SpeechResponseObject, error) {
	audio, err := s.interviews.Speak(ctx, valueOf(request.Body).Text)
	if err != nil {
		body, status := errorModel(ctx, err)
		return openapi.SpeechdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return openapi.Speech200AudiowavResponse{
		Body:          bytes.NewReader(audio),
		ContentLength: int64(len(audio)),
	}, nil
}

// Reset implements openapi.StrictServerInterface. The session id is taken
// from the query and falls back to the JSON body.
func (s *apiServer) Reset(ctx context.Context, request openapi.ResetRequestObject) (openapi.ResetResponseObject, error) {
	id := valueOf(request.Params.SessionId)
	if id == "" && request.Body != nil {
		id = valueOf(request.Body.SessionId)
	}

	if err := s.interviews.Reset(ctx, id); err != nil {
		body, status := errorModel(ctx, err)
		return openapi.ResetdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return openapi.Reset200JSONResponse{Ok: true}, nil
}

// readAudio validates the media type and reads at most maxAudioBytes.
func (s *apiServer) readAudio(contentType string, body io.Reader) (string, []byte, error) {
	var mediaType string
	if contentType != "" {
		parsed, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return "", nil, serviceerr.InvalidArgument("invalid Content-Type: " + err.Error())
		}
		if !strings.HasPrefix(parsed, "audio/") {
			return "", nil, serviceerr.InvalidArgument("Content-Type must be an audio type")
		}
		mediaType = parsed
	}

	if body == nil {
		return mediaType, nil, nil
	}
	if s.maxAudioBytes > 0 {
		body = io.LimitReader(body, s.maxAudioBytes+1)
	}

	audio, err := io.ReadAll(body)
	if err != nil {
		return "", nil, serviceerr.InvalidArgument("can't read audio body: " + err.Error())
	}
	if s.maxAudioBytes > 0 && int64(len(audio)) > s.maxAudioBytes {
		return "", nil, serviceerr.InvalidArgument(fmt.Sprintf("audio exceeds %d bytes", s.maxAudioBytes))
	}

	return mediaType, audio, nil
}

func toAnswerResult(res interview.AnswerResult) openapi.AnswerResult {
	return openapi.AnswerResult{
		Evaluation:    res.Evaluation,
		Feedback:      res.Feedback,
		Done:          res.Done,
		Question:      nonZero(res.Question),
		Round:         nonZero(res.Round),
		Summary:       nonZero(res.Summary),
		Transcription: nonZero(res.Transcription),
	}
}

// rejectRequest answers requests the generated router could not decode.
func rejectRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeError(r.Context(), w, serviceerr.InvalidArgument(err.Error()))
}

func failResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeError(r.Context(), w, err)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	body, status := errorModel(ctx, err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slogctx.Warn(ctx, "Failed to write error response", "error", err)
	}
}

// errorModel logs err and converts it to the error body.
func errorModel(ctx context.Context, err error) (openapi.ErrorModel, int) {
	body, status := toErrorModel(err)
	if status >= http.StatusInternalServerError {
		slogctx.Error(ctx, "Request failed", "error", err)
	} else {
		slogctx.Debug(ctx, "Request rejected", "error", err)
	}

	return body, status
}

func toErrorModel(err error) (model openapi.ErrorModel, httpStatus int) {
	var serviceErr *serviceerr.Error
	if !errors.As(err, &serviceErr) {
		serviceErr = serviceerr.ErrUnknown
	}

	model = openapi.ErrorModel{Error: string(serviceErr.Err)}
	if serviceErr.Description != "" {
		model.ErrorDescription = &serviceErr.Description
	}

	return model, serviceErr.HTTPStatus()
}

func valueOf[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func nonZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
