package interview_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openkcm/interview-manager/internal/interview"
	interviewmock "github.com/openkcm/interview-manager/internal/interview/mock"
	"github.com/openkcm/interview-manager/internal/question"
	"github.com/openkcm/interview-manager/internal/report"
	"github.com/openkcm/interview-manager/internal/serviceerr"
)

var errModelDown = errors.New("model is down")

var testBank = map[string]map[string][]string{
	"behavioral": {
		"easy": {
			"Tell me about yourself.",
			"Why do you want this job?",
			"Describe a time you failed.",
		},
		"medium": {
			"Describe a conflict at work.",
			"How do you prioritise your work?",
		},
	},
	"technical": {
		"hard": {
			"Explain the CAP theorem.",
		},
	},
}

func newBank(t *testing.T) *question.Bank {
	t.Helper()

	bank, err := question.NewBank(testBank)
	require.NoError(t, err)
	return bank
}

// echoGenerator answers every prompt with a numbered text naming the kind
// of prompt it received.
type echoGenerator struct {
	mu    sync.Mutex
	calls int
}

func (g *echoGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++

	switch {
	case strings.HasPrefix(prompt, "Based on this interview exchange"):
		return fmt.Sprintf("evaluation %d", g.calls), nil
	case strings.HasPrefix(prompt, "Based on this evaluation"):
		return fmt.Sprintf("feedback %d", g.calls), nil
	default:
		return fmt.Sprintf("summary %d", g.calls), nil
	}
}

type failingGenerator struct{ err error }

func (g failingGenerator) GenerateText(context.Context, string) (string, error) {
	return "", g.err
}

// stuckGenerator never returns on its own.
type stuckGenerator struct{ release chan struct{} }

func (g stuckGenerator) GenerateText(context.Context, string) (string, error) {
	<-g.release
	return "too late", nil
}

// gatedGenerator reports every call on entered and answers like
// echoGenerator once release is closed.
type gatedGenerator struct {
	echoGenerator

	entered chan struct{}
	release chan struct{}
}

func newGatedGenerator(callers int) *gatedGenerator {
	return &gatedGenerator{
		entered: make(chan struct{}, callers),
		release: make(chan struct{}),
	}
}

func (g *gatedGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	select {
	case g.entered <- struct{}{}:
	default:
	}
	<-g.release
	return g.echoGenerator.GenerateText(ctx, prompt)
}

type fakeTranscriber struct {
	text string
	err  error
}

func (f fakeTranscriber) Transcribe(context.Context, []byte, string) (string, error) {
	return f.text, f.err
}

type fakeSynthesizer struct {
	audio []byte
	err   error
}

func (f fakeSynthesizer) Synthesize(context.Context, string) ([]byte, error) {
	return f.audio, f.err
}

// stalledVoice ignores its context and only returns once release closes.
type stalledVoice struct {
	release <-chan struct{}
}

func newStalledVoice(t *testing.T) stalledVoice {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	return stalledVoice{release: release}
}

func (v stalledVoice) Transcribe(context.Context, []byte, string) (string, error) {
	<-v.release
	return "too late", nil
}

func (v stalledVoice) Synthesize(context.Context, string) ([]byte, error) {
	<-v.release
	return []byte("too late"), nil
}

type fakeReports struct {
	mu      sync.Mutex
	reports []report.Report
	err     error
}

func (f *fakeReports) Create(_ context.Context, r report.Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.reports = append(f.reports, r)
	return nil
}

func (f *fakeReports) Latest(_ context.Context, sessionID string) (report.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.reports) - 1; i >= 0; i-- {
		if f.reports[i].SessionID == sessionID {
			return f.reports[i], nil
		}
	}
	return report.Report{}, serviceerr.ErrNotFound
}

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newMachine(t *testing.T, gen interview.TextGenerator, opts ...interview.MachineOption) *interview.Machine {
	t.Helper()

	m, err := interview.NewMachine(newBank(t), gen, opts...)
	require.NoError(t, err)
	return m
}

func newService(t *testing.T, repo interview.Repository, gen interview.TextGenerator, opts ...interview.ServiceOption) *interview.Service {
	t.Helper()

	svc, err := interview.NewService(repo, newMachine(t, gen), opts...)
	require.NoError(t, err)
	return svc
}

func newMockService(t *testing.T, gen interview.TextGenerator, opts ...interview.ServiceOption) (*interview.Service, *interviewmock.Repository) {
	t.Helper()

	repo := interviewmock.NewInMemRepository()
	return newService(t, repo, gen, opts...), repo
}

func errorIs(target error) require.ErrorAssertionFunc {
	return func(t require.TestingT, err error, msgAndArgs ...any) {
		require.ErrorIs(t, err, target, msgAndArgs...)
	}
}
