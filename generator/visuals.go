package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/genai"

	"adforge/config"
)

const (
	videoPollInterval = 10 * time.Second
	videoPollMax      = 30 // ~5분 상한
)

// VisualPrompt composes the image/video prompt for a generated post.
func VisualPrompt(platform, body string, bc *string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a marketing visual for a %s post with this copy:\n%s\n", platform, body)
	if bc != nil && *bc != "" {
		fmt.Fprintf(&b, "\nBrand context: %s\n", *bc)
	}
	b.WriteString("No text overlays, photographic style, suitable as social media creative.")
	return b.String()
}

// GenerateImage produces one image for a post and stores it under the media
// dir. Returns the public URL and, when the step fell back to the placeholder,
// the degradation reason.
func GenerateImage(ctx context.Context, prompt, postID string) (string, *string) {
	client, err := newClient(ctx)
	if err != nil {
		return PlaceholderImageURL, strPtr(fmt.Sprintf("image generation degraded: %v", err))
	}

	cfg := config.GetConfig()
	resp, err := client.Models.GenerateImages(ctx, cfg.Gemini.ImageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
	})
	if err != nil {
		return PlaceholderImageURL, strPtr(fmt.Sprintf("image generation degraded: %v", err))
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return PlaceholderImageURL, strPtr("image generation degraded: empty response")
	}

	url, err := saveImage(resp.GeneratedImages[0].Image.ImageBytes, postID)
	if err != nil {
		return PlaceholderImageURL, strPtr(fmt.Sprintf("image generation degraded: %v", err))
	}
	return url, nil
}

// GenerateVideo produces one short video for a post via the long-running
// video API, polling until completion. Returns the video URI and, when the
// step fell back to the mock URL, the degradation reason.
func GenerateVideo(ctx context.Context, prompt string) (string, *string) {
	client, err := newClient(ctx)
	if err != nil {
		return PlaceholderVideoURL, strPtr(fmt.Sprintf("video generation degraded: %v", err))
	}

	cfg := config.GetConfig()
	op, err := client.Models.GenerateVideos(ctx, cfg.Gemini.VideoModel, prompt, nil, &genai.GenerateVideosConfig{
		AspectRatio: "16:9",
	})
	if err != nil {
		return PlaceholderVideoURL, strPtr(fmt.Sprintf("video generation degraded: %v", err))
	}

	for i := 0; !op.Done; i++ {
		if i >= videoPollMax {
			return PlaceholderVideoURL, strPtr("video generation degraded: operation did not complete in time")
		}
		select {
		case <-time.After(videoPollInterval):
		case <-ctx.Done():
			return PlaceholderVideoURL, strPtr(fmt.Sprintf("video generation degraded: %v", ctx.Err()))
		}
		op, err = client.Operations.GetVideosOperation(ctx, op, nil)
		if err != nil {
			return PlaceholderVideoURL, strPtr(fmt.Sprintf("video generation degraded: %v", err))
		}
	}

	if op.Response == nil || len(op.Response.GeneratedVideos) == 0 ||
		op.Response.GeneratedVideos[0].Video == nil || op.Response.GeneratedVideos[0].Video.URI == "" {
		return PlaceholderVideoURL, strPtr("video generation degraded: empty response")
	}
	return op.Response.GeneratedVideos[0].Video.URI, nil
}

// saveImage writes image bytes under the configured media dir and returns the
// public URL the gateway serves it from.
func saveImage(data []byte, postID string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image payload")
	}
	cfg := config.GetConfig()
	dir := filepath.Join(config.GetBasePath(), cfg.Media.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s.png", postID)
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(cfg.Media.BaseURL, "/"), name), nil
}
