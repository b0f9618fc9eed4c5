package cli

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/dmitrijs2005/cubihealth/internal/logging"
	"github.com/dmitrijs2005/cubihealth/internal/repositories/scores"
	"github.com/dmitrijs2005/cubihealth/internal/session"
	"github.com/stretchr/testify/require"
)

// script feeds scripted answers to every interactive input helper, in call
// order, and records the prompts it was asked.
type script struct {
	answers []string
	prompts []string
}

func (s *script) next(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	v := s.answers[0]
	s.answers = s.answers[1:]
	return v, nil
}

func stubInputs(t *testing.T, answers ...string) *script {
	t.Helper()
	s := &script{answers: answers}

	origST, origGP, origML := getSimpleText, getPassword, getMultiline
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) { return s.next(prompt) }
	getMultiline = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) { return s.next(prompt) }
	getPassword = func(_ *bufio.Reader, prompt string, _ io.Writer) ([]byte, error) {
		v, err := s.next(prompt)
		return []byte(v), err
	}
	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline = origST, origGP, origML
	})
	return s
}

func newTestApp(t *testing.T, opts ...session.SimulatedOption) (*App, *bytes.Buffer, *scores.MemoryRepository) {
	t.Helper()
	store, err := session.NewStore(session.NewSimulated(opts...), logging.Discard(), session.WithTokenSecret([]byte("cli-secret")))
	require.NoError(t, err)

	repo := scores.NewMemoryRepository()
	out := &bytes.Buffer{}
	return newApp(store, repo, logging.Discard(), nil, out, nil), out, repo
}

// patientAnswers walks the patient intake with HPV as the only risk factor.
func patientAnswers() []string {
	return []string{
		"Jane Doe", "jane@example.com", "pw", "pw", "1990-04-12", "next",
		"no", "no", "no", "next",
		"yes", "no", "no", "no", "no", "next",
		"submit",
	}
}

func doctorAnswers() []string {
	return []string{
		"Dr. John Doe", "doc@example.com", "pw", "pw", "next",
		"oncology", "MD12345678", "10", "", "", "", "next",
		"submit",
	}
}
