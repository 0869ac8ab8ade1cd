package transcription

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"extract-audio-from-video/domain/audio"
)

type stubRunner struct {
	calls   [][]string
	runHook func(name string, args []string) error
}

func (s *stubRunner) Run(ctx context.Context, name string, args ...string) error {
	s.calls = append(s.calls, append([]string{name}, args...))
	if s.runHook != nil {
		return s.runHook(name, args)
	}
	return nil
}

func (s *stubRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return nil, nil
}

func (s *stubRunner) Stream(ctx context.Context, onLine func(string), name string, args ...string) error {
	return nil
}

func found(name string) (string, error) { return "/usr/bin/" + name, nil }

func tempChunk(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "video_parte_001.mp3")
	if err := os.WriteFile(path, []byte("mp3"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestClient_Transcribe(t *testing.T) {
	chunkPath := tempChunk(t)
	runner := &stubRunner{
		runHook: func(name string, args []string) error {
			// whisper writes {stem}.txt into --output_dir
			transcript := filepath.Join(filepath.Dir(chunkPath), "video_parte_001.txt")
			return os.WriteFile(transcript, []byte("hello"), 0644)
		},
	}
	client := NewClient(
		WithModel("small"),
		WithLanguage("pt"),
		WithCommandRunner(runner),
		WithLookPath(found),
	)

	transcriptPath, err := client.Transcribe(context.Background(), chunkPath)
	if err != nil {
		t.Fatalf("Transcribe returned error: %v", err)
	}

	want := filepath.Join(filepath.Dir(chunkPath), "video_parte_001.txt")
	if transcriptPath != want {
		t.Errorf("transcript path = %q, want %q", transcriptPath, want)
	}

	args := runner.calls[0]
	wantArgs := []string{
		"whisper",
		chunkPath,
		"--model", "small",
		"--output_dir", filepath.Dir(chunkPath),
		"--output_format", "txt",
		"--language", "pt",
	}
	if len(args) != len(wantArgs) {
		t.Fatalf("argv = %v, want %v", args, wantArgs)
	}
	for i := range wantArgs {
		if args[i] != wantArgs[i] {
			t.Errorf("argv[%d] = %q, want %q", i, args[i], wantArgs[i])
		}
	}
}

func TestClient_Transcribe_NoLanguageFlagByDefault(t *testing.T) {
	chunkPath := tempChunk(t)
	runner := &stubRunner{
		runHook: func(name string, args []string) error {
			transcript := filepath.Join(filepath.Dir(chunkPath), "video_parte_001.txt")
			return os.WriteFile(transcript, []byte("x"), 0644)
		},
	}
	client := NewClient(WithCommandRunner(runner), WithLookPath(found))

	if _, err := client.Transcribe(context.Background(), chunkPath); err != nil {
		t.Fatalf("Transcribe returned error: %v", err)
	}

	for _, arg := range runner.calls[0] {
		if arg == "--language" {
			t.Error("--language passed without a configured language")
		}
	}
}

func TestClient_Transcribe_ToolNotFound(t *testing.T) {
	client := NewClient(
		WithCommandRunner(&stubRunner{}),
		WithLookPath(func(string) (string, error) { return "", errors.New("not found") }),
	)

	_, err := client.Transcribe(context.Background(), "chunk.mp3")
	if !errors.Is(err, audio.ErrToolNotFound) {
		t.Fatalf("Transcribe error = %v, want ErrToolNotFound", err)
	}
}

func TestClient_Transcribe_MissingAudioFile(t *testing.T) {
	client := NewClient(WithCommandRunner(&stubRunner{}), WithLookPath(found))

	_, err := client.Transcribe(context.Background(), filepath.Join(t.TempDir(), "absent.mp3"))
	if err == nil {
		t.Fatal("expected error for missing audio file")
	}
}

func TestClient_Transcribe_TranscriptNotWritten(t *testing.T) {
	chunkPath := tempChunk(t)
	// Command succeeds but produces no transcript file.
	client := NewClient(WithCommandRunner(&stubRunner{}), WithLookPath(found))

	_, err := client.Transcribe(context.Background(), chunkPath)
	if err == nil {
		t.Fatal("expected error when transcript is missing")
	}
}
