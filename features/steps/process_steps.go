//go:build integration

package steps

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"extract-audio-from-video/application/pipeline"
	"extract-audio-from-video/domain/audio"
	"extract-audio-from-video/domain/media"

	"github.com/cucumber/godog"
)

// mockFileChecker simulates file existence
type mockFileChecker struct {
	existingFiles map[string]bool
}

func (m *mockFileChecker) Exists(path string) bool {
	return m.existingFiles[path]
}

// mockProber returns a fixed duration instead of opening a container
type mockProber struct {
	duration float64
}

func (m *mockProber) Probe(ctx context.Context, path string) (*media.Info, error) {
	return &media.Info{Path: path, Duration: m.duration, FPS: 30}, nil
}

// mockExtractor records the extraction and marks the intermediate file
// as existing so the split step can find it
type mockExtractor struct {
	calls       int
	fileChecker *mockFileChecker
}

func (m *mockExtractor) Extract(ctx context.Context, req *audio.ExtractionRequest, outputPath string) error {
	m.calls++
	m.fileChecker.existingFiles[outputPath] = true
	return nil
}

// mockSplitter produces one chunk per planned range, optionally failing
// at a configured index
type mockSplitter struct {
	failAt int
}

func (m *mockSplitter) Cut(ctx context.Context, sourcePath string, plan audio.Plan, outputDir, baseName string) ([]audio.ChunkFile, error) {
	var chunks []audio.ChunkFile
	for _, rng := range plan {
		if m.failAt != 0 && rng.Index == m.failAt {
			return chunks, fmt.Errorf("failed to cut chunk %d: %w", rng.Index,
				&audio.ExtractionError{ExitCode: 1, Output: "simulated failure"})
		}
		chunks = append(chunks, audio.ChunkFile{
			Path: filepath.Join(outputDir, audio.ChunkFilename(baseName, rng.Index)),
			Size: 1024,
		})
	}
	return chunks, nil
}

// mockRemover records cleanup calls
type mockRemover struct {
	removed []string
}

func (m *mockRemover) Remove(path string) error {
	m.removed = append(m.removed, path)
	return nil
}

// processContext holds test state for processing scenarios
type processContext struct {
	videoPath   string
	outputDir   string
	quality     string
	cleanup     bool
	prober      *mockProber
	extractor   *mockExtractor
	splitter    *mockSplitter
	fileChecker *mockFileChecker
	remover     *mockRemover
	output      *bytes.Buffer
	result      *pipeline.Result
}

// SharedProcessContext is reset before each scenario via Before hook
var SharedProcessContext *processContext

func getProcessContext() *processContext {
	return SharedProcessContext
}

func InitializeProcessScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		outputDir, err := os.MkdirTemp("", "chunks")
		if err != nil {
			return c, err
		}
		fileChecker := &mockFileChecker{existingFiles: make(map[string]bool)}
		SharedProcessContext = &processContext{
			outputDir:   outputDir,
			cleanup:     true,
			prober:      &mockProber{},
			extractor:   &mockExtractor{fileChecker: fileChecker},
			splitter:    &mockSplitter{},
			fileChecker: fileChecker,
			remover:     &mockRemover{},
			output:      &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if SharedProcessContext != nil {
			os.RemoveAll(SharedProcessContext.outputDir)
		}
		SharedProcessContext = nil
		return c, nil
	})

	ctx.Step(`^a source video at "([^"]*)" lasting (\d+\.?\d*) seconds$`, aSourceVideoLasting)
	ctx.Step(`^no source video exists at "([^"]*)"$`, noSourceVideoExistsAt)
	ctx.Step(`^the quality tier is "([^"]*)"$`, theQualityTierIs)
	ctx.Step(`^cleanup is disabled$`, cleanupIsDisabled)
	ctx.Step(`^cutting fails at chunk (\d+)$`, cuttingFailsAtChunk)
	ctx.Step(`^I process the video into (-?\d+) parts$`, iProcessTheVideoIntoParts)
	ctx.Step(`^the run should succeed$`, theRunShouldSucceed)
	ctx.Step(`^the run should fail mentioning "([^"]*)"$`, theRunShouldFailMentioning)
	ctx.Step(`^(\d+) chunk files should be listed$`, chunkFilesShouldBeListed)
	ctx.Step(`^chunk (\d+) should be named "([^"]*)"$`, chunkShouldBeNamed)
	ctx.Step(`^the intermediate file should have been removed$`, theIntermediateFileShouldHaveBeenRemoved)
	ctx.Step(`^the intermediate file should not have been removed$`, theIntermediateFileShouldNotHaveBeenRemoved)
	ctx.Step(`^no extraction should have happened$`, noExtractionShouldHaveHappened)
}

func aSourceVideoLasting(path string, duration float64) error {
	p := getProcessContext()
	p.videoPath = path
	p.prober.duration = duration
	p.fileChecker.existingFiles[path] = true
	return nil
}

func noSourceVideoExistsAt(path string) error {
	p := getProcessContext()
	p.videoPath = path
	p.fileChecker.existingFiles[path] = false
	return nil
}

func theQualityTierIs(tier string) error {
	getProcessContext().quality = tier
	return nil
}

func cleanupIsDisabled() error {
	getProcessContext().cleanup = false
	return nil
}

func cuttingFailsAtChunk(index int) error {
	getProcessContext().splitter.failAt = index
	return nil
}

func iProcessTheVideoIntoParts(parts int) error {
	p := getProcessContext()

	service := pipeline.NewService(
		p.prober,
		p.extractor,
		p.splitter,
		p.fileChecker,
		p.remover,
		pipeline.WithOutput(p.output),
	)

	req := pipeline.NewRequest(p.videoPath, parts)
	req.OutputDir = p.outputDir
	req.Cleanup = p.cleanup
	if p.quality != "" {
		req.Quality = p.quality
	}

	p.result = service.Run(context.Background(), req)
	return nil
}

func theRunShouldSucceed() error {
	p := getProcessContext()
	if !p.result.Success {
		return fmt.Errorf("run failed: %s", p.result.Error)
	}
	return nil
}

func theRunShouldFailMentioning(fragment string) error {
	p := getProcessContext()
	if p.result.Success {
		return fmt.Errorf("run succeeded, expected a failure mentioning %q", fragment)
	}
	if !strings.Contains(p.result.Error, fragment) {
		return fmt.Errorf("error %q does not mention %q", p.result.Error, fragment)
	}
	return nil
}

func chunkFilesShouldBeListed(count int) error {
	p := getProcessContext()
	if len(p.result.SplitFiles) != count {
		return fmt.Errorf("expected %d chunk files, got %d: %v", count, len(p.result.SplitFiles), p.result.SplitFiles)
	}
	return nil
}

func chunkShouldBeNamed(index int, name string) error {
	p := getProcessContext()
	if index < 1 || index > len(p.result.SplitFiles) {
		return fmt.Errorf("chunk %d out of range, %d files listed", index, len(p.result.SplitFiles))
	}
	got := filepath.Base(p.result.SplitFiles[index-1])
	if got != name {
		return fmt.Errorf("chunk %d is named %q, want %q", index, got, name)
	}
	return nil
}

func theIntermediateFileShouldHaveBeenRemoved() error {
	p := getProcessContext()
	if len(p.remover.removed) != 1 {
		return fmt.Errorf("expected exactly one removal, got %v", p.remover.removed)
	}
	return nil
}

func theIntermediateFileShouldNotHaveBeenRemoved() error {
	p := getProcessContext()
	if len(p.remover.removed) != 0 {
		return fmt.Errorf("intermediate file was removed: %v", p.remover.removed)
	}
	return nil
}

func noExtractionShouldHaveHappened() error {
	p := getProcessContext()
	if p.extractor.calls != 0 {
		return fmt.Errorf("extraction ran %d times, expected none", p.extractor.calls)
	}
	return nil
}
