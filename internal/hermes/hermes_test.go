package hermes

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

type recordingClient struct {
	subjects []string
	err      error
}

func (r *recordingClient) Publish(subject string, _ interface{}) error {
	r.subjects = append(r.subjects, subject)
	return r.err
}
func (r *recordingClient) Close() {}

func TestSubjectsCoveredByStream(t *testing.T) {
	subjects := []string{
		SubjectChartRendered,
		SubjectComparisonSaved("c1"),
		SubjectComparisonDeleted("c1"),
		SubjectSessionCreated("s1"),
		SubjectSessionUpdated("s1"),
	}
	for _, s := range subjects {
		covered := false
		for _, pattern := range StreamSubjects {
			if strings.HasPrefix(s, strings.TrimSuffix(pattern, ">")) {
				covered = true
			}
		}
		if !covered {
			t.Errorf("subject %s not captured by stream %s", s, StreamName)
		}
	}
}

func TestSubjectFormat(t *testing.T) {
	if got := SubjectComparisonSaved("abc"); got != "fairem.comparison.abc.saved" {
		t.Errorf("unexpected subject %s", got)
	}
	if got := SubjectSessionUpdated("xyz"); got != "fairem.session.xyz.updated" {
		t.Errorf("unexpected subject %s", got)
	}
}

func TestEmit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// nil client is a no-op
	Emit(nil, logger, SubjectChartRendered, nil)

	rc := &recordingClient{err: errors.New("boom")}
	Emit(rc, logger, SubjectChartRendered, ChartRenderedEvent{Kind: "scatter"})
	if len(rc.subjects) != 1 || rc.subjects[0] != SubjectChartRendered {
		t.Errorf("expected one publish on %s, got %v", SubjectChartRendered, rc.subjects)
	}
}
