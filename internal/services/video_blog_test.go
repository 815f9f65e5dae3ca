package services

import (
	"context"
	"fmt"
	"testing"

	"festivalcms/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVideoRepo struct {
	byID   map[string]*domain.VideoBlog
	nextID int
}

func (f *fakeVideoRepo) Create(ctx context.Context, v *domain.VideoBlog) error {
	f.nextID++
	v.ID = fmt.Sprintf("vid-%d", f.nextID)
	cp := *v
	f.byID[v.ID] = &cp
	return nil
}

func (f *fakeVideoRepo) GetByID(ctx context.Context, id string) (*domain.VideoBlog, error) {
	if v, ok := f.byID[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeVideoRepo) List(ctx context.Context, videoType domain.VideoType) ([]*domain.VideoBlog, error) {
	var out []*domain.VideoBlog
	for _, v := range f.byID {
		if videoType == "" || v.VideoType == videoType {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVideoRepo) Update(ctx context.Context, v *domain.VideoBlog) error {
	cp := *v
	f.byID[v.ID] = &cp
	return nil
}

func (f *fakeVideoRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func TestYoutubeURLRegexp(t *testing.T) {
	for _, ok := range []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtube.com/watch?v=abc_DEF-123",
		"https://youtu.be/dQw4w9WgXcQ",
	} {
		assert.True(t, youtubeURLRegexp.MatchString(ok), ok)
	}
	for _, bad := range []string{
		"http://www.youtube.com/watch?v=abc",
		"https://vimeo.com/123",
		"https://www.youtube.com/watch?v=abc&list=x",
		"https://youtu.be/",
	} {
		assert.False(t, youtubeURLRegexp.MatchString(bad), bad)
	}
}

func TestVideoBlogService(t *testing.T) {
	ctx := context.Background()
	storage := &fakeStorage{}
	svc := NewVideoBlogService(&fakeVideoRepo{byID: map[string]*domain.VideoBlog{}}, storage, testLogger, testTimeout)

	_, err := svc.AddVideo(ctx, domain.VideoBlogInput{Title: "T", VideoType: "youtube", YoutubeURL: "https://vimeo.com/1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.AddVideo(ctx, domain.VideoBlogInput{Title: "T", VideoType: "raw"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.AddVideo(ctx, domain.VideoBlogInput{Title: "T", VideoType: "gif"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	yt, err := svc.AddVideo(ctx, domain.VideoBlogInput{Title: "Keynote", VideoType: "youtube", YoutubeURL: "https://youtu.be/abc123"})
	require.NoError(t, err)
	raw, err := svc.AddVideo(ctx, domain.VideoBlogInput{Title: "Reading", VideoType: "raw", Video: testFile("reading.mp4")})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/VideoBlog/1-reading.mp4", raw.VideoURL)

	list, err := svc.ListVideos(ctx, domain.VideoRaw)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, raw.ID, list[0].ID)
	all, err := svc.ListVideos(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.GetVideo(ctx, yt.ID, domain.VideoRaw)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.GetVideo(ctx, yt.ID, "")
	assert.NoError(t, err)

	// Switching a raw entry to youtube drops the stored file.
	got, err := svc.UpdateVideo(ctx, raw.ID, domain.VideoBlogInput{VideoType: "youtube", YoutubeURL: "https://www.youtube.com/watch?v=xyz"})
	require.NoError(t, err)
	assert.Equal(t, domain.VideoYoutube, got.VideoType)
	assert.Empty(t, got.VideoURL)
	assert.Equal(t, []string{"/uploads/VideoBlog/1-reading.mp4"}, storage.deleted)

	_, err = svc.UpdateVideo(ctx, yt.ID, domain.VideoBlogInput{VideoType: "raw"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, svc.DeleteVideo(ctx, yt.ID))
	assert.ErrorIs(t, svc.DeleteVideo(ctx, yt.ID), domain.ErrNotFound)
}
