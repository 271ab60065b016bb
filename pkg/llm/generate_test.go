package llm

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zbiljic/lee/pkg/commit"
	"github.com/zbiljic/lee/pkg/gitdiff"
)

// fakeProvider returns a canned reply and records every prompt it receives.
type fakeProvider struct {
	reply   string
	err     error
	prompts []string
	opts    []GenerateOptions
}

func (f *fakeProvider) String() string    { return "fake" }
func (f *fakeProvider) IsAvailable() bool { return true }

func (f *fakeProvider) Generate(_ context.Context, prompt string, opts GenerateOptions) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.opts = append(f.opts, opts)
	return f.reply, f.err
}

const authDiff = `diff --git a/src/auth/session.go b/src/auth/session.go
--- a/src/auth/session.go
+++ b/src/auth/session.go
@@ -1,3 +1,4 @@
 func Refresh() {
-	return
+	if expired() {
+		renew()
+	}
 }`

func multiFileDiff(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "diff --git a/pkg/f%d.go b/pkg/f%d.go\n+x := %d\n", i, i, i)
	}
	return b.String()
}

func TestGeneratorParsesReply(t *testing.T) {
	fake := &fakeProvider{
		reply: "fix(auth): handle expired session tokens\n\n  - refresh token before expiry  \n",
	}
	g := NewGenerator(fake)

	msg, err := g.Generate(context.Background(), authDiff)
	require.NoError(t, err)

	assert.Equal(t, commit.Fix, msg.Type)
	assert.Equal(t, "auth", msg.Scope)
	assert.Equal(t, "handle expired session tokens", msg.Subject)
	assert.Equal(t, "- refresh token before expiry", msg.Body)
	assert.Equal(t, "fix(auth): handle expired session tokens\n\n- refresh token before expiry", msg.Conventional())

	require.Len(t, fake.opts, 1)
	assert.Equal(t, DefaultGenerateOptions(), fake.opts[0])
}

func TestGeneratorEmptyReplyUsesFallback(t *testing.T) {
	for _, reply := range []string{"", "   \n\t"} {
		fake := &fakeProvider{reply: reply}
		g := NewGenerator(fake, GeneratorOptions{Language: commit.Indonesian})

		msg, err := g.Generate(context.Background(), authDiff)
		require.NoError(t, err)

		assert.Equal(t, Fallback(gitdiff.Analyze(authDiff), commit.Indonesian), msg)
	}
}

func TestGeneratorTransportErrorUsesFallback(t *testing.T) {
	fake := &fakeProvider{err: fmt.Errorf("%w: connection refused", ErrTransport)}
	g := NewGenerator(fake)

	msg, err := g.Generate(context.Background(), authDiff)
	require.NoError(t, err)

	analysis := gitdiff.Analyze(authDiff)
	assert.Equal(t, Fallback(analysis, commit.English), msg)
	assert.Equal(t, "auth", msg.Scope)
	assert.Equal(t, "1 file(s) changed, +3, -1", msg.Body)
}

func TestGeneratorEmptyDiff(t *testing.T) {
	fake := &fakeProvider{reply: "feat: anything"}
	g := NewGenerator(fake)

	_, err := g.Generate(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyDiff)

	_, err = g.GenerateWithAnalysis(context.Background(), " \n ", gitdiff.Analysis{})
	assert.ErrorIs(t, err, ErrEmptyDiff)

	assert.Empty(t, fake.prompts, "provider must not be called for an empty diff")
}

func TestGeneratorIsDeterministic(t *testing.T) {
	fake := &fakeProvider{reply: "refactor(core): simplify loop"}
	g := NewGenerator(fake)

	first, err := g.Generate(context.Background(), authDiff)
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), authDiff)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, fake.prompts, 2)
	assert.Equal(t, fake.prompts[0], fake.prompts[1])
}

func TestGeneratorChunksLargeDiffs(t *testing.T) {
	fake := &fakeProvider{reply: "chore: bump"}
	g := NewGenerator(fake)

	_, err := g.Generate(context.Background(), multiFileDiff(7))
	require.NoError(t, err)

	require.Len(t, fake.prompts, 1)
	prompt := fake.prompts[0]
	assert.Contains(t, prompt, "(2 more files omitted for brevity)")
	assert.Contains(t, prompt, "- Files changed: 7")
	assert.NotContains(t, prompt, "pkg/f5.go")
}

func TestGeneratorRedactsPrompt(t *testing.T) {
	fake := &fakeProvider{reply: "chore: rotate credentials"}
	g := NewGenerator(fake)

	diff := "diff --git a/app.env b/app.env\n+password = \"abc123\"\n"
	_, err := g.Generate(context.Background(), diff)
	require.NoError(t, err)

	require.Len(t, fake.prompts, 1)
	assert.NotContains(t, fake.prompts[0], "abc123")
	assert.Contains(t, fake.prompts[0], gitdiff.RedactedMarker)
}

func TestGeneratorBreakingChange(t *testing.T) {
	diff := authDiff + "\n+// BREAKING CHANGE: Refresh now renews"

	fake := &fakeProvider{reply: "feat(auth): renew sessions"}

	msg, err := NewGenerator(fake).Generate(context.Background(), diff)
	require.NoError(t, err)
	assert.False(t, msg.BreakingChange)

	msg, err = NewGenerator(fake, GeneratorOptions{DetectBreaking: true}).Generate(context.Background(), diff)
	require.NoError(t, err)
	assert.True(t, msg.BreakingChange)
}
