package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/parasport-hub/content-api/internal/config"
	"github.com/parasport-hub/content-api/internal/mocks"
	"github.com/parasport-hub/content-api/internal/models"
	"github.com/parasport-hub/content-api/internal/repository"
	"github.com/parasport-hub/content-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices() (*service.Services, *mocks.MockNewsRepository, *mocks.MockClassificationRepository) {
	newsRepo := mocks.NewMockNewsRepository()
	classificationRepo := mocks.NewMockClassificationRepository()

	repos := &repository.Repositories{
		News:           newsRepo,
		Category:       mocks.NewMockCategoryRepository(),
		Tag:            mocks.NewMockTagRepository(),
		Classification: classificationRepo,
	}
	cfg := &config.Config{
		Media: config.MediaConfig{BaseURL: "https://cdn.test/uploads"},
		News:  config.NewsConfig{SectionPageSize: 6},
	}

	return service.NewServices(repos, cfg, zerolog.Nop()), newsRepo, classificationRepo
}

func wordsOf(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func createArticle(t *testing.T, svcs *service.Services, in *models.CreateNewsInput) *models.News {
	t.Helper()
	if in.Excerpt == "" {
		in.Excerpt = "excerpt"
	}
	if in.Content == "" {
		in.Content = wordsOf(50)
	}
	if in.CategoryID == 0 {
		in.CategoryID = 1
	}

	n, err := svcs.News.Create(context.Background(), in)
	require.NoError(t, err)
	return n
}

func TestCreate_SlugSequence(t *testing.T) {
	svcs, _, _ := newTestServices()

	first := createArticle(t, svcs, &models.CreateNewsInput{Title: "Big Win"})
	second := createArticle(t, svcs, &models.CreateNewsInput{Title: "Big Win"})
	third := createArticle(t, svcs, &models.CreateNewsInput{Title: "Big Win"})

	assert.Equal(t, "big-win", first.Slug)
	assert.Equal(t, "big-win-1", second.Slug)
	assert.Equal(t, "big-win-2", third.Slug)
}

func TestCreate_Defaults(t *testing.T) {
	svcs, _, _ := newTestServices()

	n := createArticle(t, svcs, &models.CreateNewsInput{
		Title:   "Season Preview",
		Content: wordsOf(250),
	})

	assert.Equal(t, models.StatusDraft, n.Status)
	assert.Equal(t, 3, n.ReadTime)
	assert.Nil(t, n.PublishedAt)
	assert.EqualValues(t, 0, n.ViewCount)
	assert.NotZero(t, n.ID)
}

func TestCreate_PublishedStampsTimestamp(t *testing.T) {
	svcs, _, _ := newTestServices()

	n := createArticle(t, svcs, &models.CreateNewsInput{
		Title:  "Gold Rush",
		Status: models.StatusPublished,
	})

	require.NotNil(t, n.PublishedAt)
	assert.WithinDuration(t, time.Now(), *n.PublishedAt, 2*time.Second)
}

func TestCreate_ExplicitPublishedAtWins(t *testing.T) {
	svcs, _, _ := newTestServices()

	explicit := time.Date(2024, 8, 28, 10, 0, 0, 0, time.UTC)
	n := createArticle(t, svcs, &models.CreateNewsInput{
		Title:       "Scheduled Story",
		Status:      models.StatusPublished,
		PublishedAt: &explicit,
	})

	require.NotNil(t, n.PublishedAt)
	assert.True(t, n.PublishedAt.Equal(explicit))
}

func TestCreate_InvalidStatus(t *testing.T) {
	svcs, _, _ := newTestServices()

	_, err := svcs.News.Create(context.Background(), &models.CreateNewsInput{
		Title:      "Bad Status",
		Excerpt:    "e",
		Content:    "c",
		CategoryID: 1,
		Status:     "pending",
	})
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestUpdate_PublishThenDraftClearsPublishedAt(t *testing.T) {
	svcs, _, _ := newTestServices()
	ctx := context.Background()

	n := createArticle(t, svcs, &models.CreateNewsInput{Title: "Status Story"})

	published := models.StatusPublished
	updated, err := svcs.News.Update(ctx, n.ID, &models.UpdateNewsInput{Status: &published})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)

	draft := models.StatusDraft
	updated, err = svcs.News.Update(ctx, n.ID, &models.UpdateNewsInput{Status: &draft})
	require.NoError(t, err)
	assert.Nil(t, updated.PublishedAt)
}

func TestUpdate_ArchiveKeepsPublishedAt(t *testing.T) {
	svcs, _, _ := newTestServices()
	ctx := context.Background()

	n := createArticle(t, svcs, &models.CreateNewsInput{
		Title:  "Archive Me",
		Status: models.StatusPublished,
	})
	require.NotNil(t, n.PublishedAt)
	stamped := *n.PublishedAt

	archived := models.StatusArchived
	updated, err := svcs.News.Update(ctx, n.ID, &models.UpdateNewsInput{Status: &archived})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	assert.True(t, updated.PublishedAt.Equal(stamped))
}

func TestUpdate_TitleRegeneratesSlugExcludingSelf(t *testing.T) {
	svcs, _, _ := newTestServices()
	ctx := context.Background()

	n := createArticle(t, svcs, &models.CreateNewsInput{Title: "Big Win"})

	// resupplying the same title must not suffix against itself
	title := "Big Win"
	updated, err := svcs.News.Update(ctx, n.ID, &models.UpdateNewsInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "big-win", updated.Slug)

	// a new title regenerates, colliding titles get suffixed
	createArticle(t, svcs, &models.CreateNewsInput{Title: "Final Recap"})
	title = "Final Recap"
	updated, err = svcs.News.Update(ctx, n.ID, &models.UpdateNewsInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "final-recap-1", updated.Slug)
}

func TestUpdate_ContentRecomputesReadTime(t *testing.T) {
	svcs, _, _ := newTestServices()
	ctx := context.Background()

	n := createArticle(t, svcs, &models.CreateNewsInput{Title: "Read Time", Content: wordsOf(50)})
	assert.Equal(t, 1, n.ReadTime)

	longer := wordsOf(450)
	updated, err := svcs.News.Update(ctx, n.ID, &models.UpdateNewsInput{Content: &longer})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.ReadTime)

	// a patch without content leaves read time alone
	excerpt := "new excerpt"
	updated, err = svcs.News.Update(ctx, n.ID, &models.UpdateNewsInput{Excerpt: &excerpt})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.ReadTime)
}

func TestUpdate_NotFound(t *testing.T) {
	svcs, _, _ := newTestServices()

	title := "Ghost"
	_, err := svcs.News.Update(context.Background(), 9999, &models.UpdateNewsInput{Title: &title})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdate_RelationReplaceWholesale(t *testing.T) {
	svcs, newsRepo, _ := newTestServices()
	ctx := context.Background()

	n := createArticle(t, svcs, &models.CreateNewsInput{
		Title:        "Tagged Story",
		SelectedTags: []int64{1, 2},
	})
	assert.ElementsMatch(t, []int64{1, 2}, newsRepo.TagJoins[n.ID])

	newTags := []int64{2, 3}
	_, err := svcs.News.Update(ctx, n.ID, &models.UpdateNewsInput{SelectedTags: &newTags})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{2, 3}, newsRepo.TagJoins[n.ID])

	// an explicitly empty list clears the relation set
	empty := []int64{}
	_, err = svcs.News.Update(ctx, n.ID, &models.UpdateNewsInput{SelectedTags: &empty})
	require.NoError(t, err)
	assert.Empty(t, newsRepo.TagJoins[n.ID])

	// absence leaves the relation set alone
	excerpt := "no relation change"
	_, err = svcs.News.Update(ctx, n.ID, &models.UpdateNewsInput{Excerpt: &excerpt})
	require.NoError(t, err)
	assert.Empty(t, newsRepo.TagJoins[n.ID])
}

func TestDelete_CascadesJoinRows(t *testing.T) {
	svcs, newsRepo, _ := newTestServices()
	ctx := context.Background()

	n := createArticle(t, svcs, &models.CreateNewsInput{
		Title:                   "Doomed",
		SelectedTags:            []int64{1},
		SelectedClassifications: []int64{2},
	})

	deleted, err := svcs.News.Delete(ctx, n.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, n.ID, deleted.ID)

	assert.NotContains(t, newsRepo.TagJoins, n.ID)
	assert.NotContains(t, newsRepo.ClassificationJoins, n.ID)

	got, err := svcs.News.GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDelete_UnknownIDIsNotAnError(t *testing.T) {
	svcs, _, _ := newTestServices()

	deleted, err := svcs.News.Delete(context.Background(), 424242)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestBulkUpdateStatus(t *testing.T) {
	svcs, _, _ := newTestServices()
	ctx := context.Background()

	a := createArticle(t, svcs, &models.CreateNewsInput{Title: "Bulk A"})
	b := createArticle(t, svcs, &models.CreateNewsInput{Title: "Bulk B"})

	updated, err := svcs.News.BulkUpdateStatus(ctx, []int64{a.ID, b.ID, 9999}, models.StatusPublished)
	require.NoError(t, err)
	require.Len(t, updated, 2)
	for _, n := range updated {
		assert.Equal(t, models.StatusPublished, n.Status)
		assert.NotNil(t, n.PublishedAt)
	}

	_, err = svcs.News.BulkUpdateStatus(ctx, []int64{a.ID}, "bogus")
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestBulkDelete(t *testing.T) {
	svcs, _, _ := newTestServices()
	ctx := context.Background()

	a := createArticle(t, svcs, &models.CreateNewsInput{Title: "Gone A"})
	b := createArticle(t, svcs, &models.CreateNewsInput{Title: "Gone B"})
	keep := createArticle(t, svcs, &models.CreateNewsInput{Title: "Keeper"})

	deleted, err := svcs.News.BulkDelete(ctx, []int64{a.ID, b.ID, 31337})
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	got, err := svcs.News.GetByID(ctx, keep.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestIncrementViewCount(t *testing.T) {
	svcs, _, _ := newTestServices()
	ctx := context.Background()

	n := createArticle(t, svcs, &models.CreateNewsInput{Title: "Popular"})

	first, err := svcs.News.IncrementViewCount(ctx, n.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, first.ViewCount)

	second, err := svcs.News.IncrementViewCountBySlug(ctx, "popular")
	require.NoError(t, err)
	assert.EqualValues(t, 2, second.ViewCount)

	_, err = svcs.News.IncrementViewCount(ctx, 9999)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svcs.News.IncrementViewCountBySlug(ctx, "no-such-slug")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestList_FilterConjunction(t *testing.T) {
	svcs, _, _ := newTestServices()
	ctx := context.Background()

	createArticle(t, svcs, &models.CreateNewsInput{
		Title: "Match A", CategoryID: 5, Status: models.StatusPublished,
	})
	createArticle(t, svcs, &models.CreateNewsInput{
		Title: "Match B", CategoryID: 5, Status: models.StatusDraft,
	})
	createArticle(t, svcs, &models.CreateNewsInput{
		Title: "Match C", CategoryID: 7, Status: models.StatusPublished,
	})

	categoryID := int64(5)
	items, err := svcs.News.List(ctx, &models.NewsFilter{
		Status:     models.StatusPublished,
		CategoryID: &categoryID,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Match A", items[0].Title)
}

func TestList_SearchAcrossFields(t *testing.T) {
	svcs, _, _ := newTestServices()
	ctx := context.Background()

	createArticle(t, svcs, &models.CreateNewsInput{Title: "Foo in title", Excerpt: "plain", Content: wordsOf(10)})
	createArticle(t, svcs, &models.CreateNewsInput{Title: "Second", Excerpt: "the FOO excerpt", Content: wordsOf(10)})
	createArticle(t, svcs, &models.CreateNewsInput{Title: "Third", Excerpt: "plain", Content: "body mentions foo somewhere"})
	createArticle(t, svcs, &models.CreateNewsInput{Title: "Unrelated", Excerpt: "plain", Content: wordsOf(10)})

	items, err := svcs.News.List(ctx, &models.NewsFilter{Search: "foo"})
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestList_SortAndPaging(t *testing.T) {
	svcs, _, _ := newTestServices()
	ctx := context.Background()

	createArticle(t, svcs, &models.CreateNewsInput{Title: "Charlie"})
	createArticle(t, svcs, &models.CreateNewsInput{Title: "Alpha"})
	createArticle(t, svcs, &models.CreateNewsInput{Title: "Bravo"})

	items, err := svcs.News.List(ctx, &models.NewsFilter{SortBy: "title", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Alpha", items[0].Title)
	assert.Equal(t, "Bravo", items[1].Title)
	assert.Equal(t, "Charlie", items[2].Title)

	items, err = svcs.News.List(ctx, &models.NewsFilter{SortBy: "title", SortOrder: "asc", Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Bravo", items[0].Title)
}

func TestSearchPublished_ConventionFlags(t *testing.T) {
	svcs, newsRepo, _ := newTestServices()
	ctx := context.Background()

	newsRepo.SeedClassification(models.Classification{ID: 1, Name: "Featured", Priority: 1, IsActive: true})
	newsRepo.SeedClassification(models.Classification{ID: 2, Name: "BREAKING", Priority: 2, IsActive: true})
	newsRepo.SeedClassification(models.Classification{ID: 3, Name: "Interviews", Priority: 3, IsActive: true})

	createArticle(t, svcs, &models.CreateNewsInput{
		Title: "Front Page", Status: models.StatusPublished, SelectedClassifications: []int64{1},
	})
	createArticle(t, svcs, &models.CreateNewsInput{
		Title: "Just In", Status: models.StatusPublished, SelectedClassifications: []int64{2},
	})
	createArticle(t, svcs, &models.CreateNewsInput{
		Title: "Sit Down", Status: models.StatusPublished, SelectedClassifications: []int64{3},
	})
	createArticle(t, svcs, &models.CreateNewsInput{
		Title: "Hidden Draft", Status: models.StatusDraft, SelectedClassifications: []int64{1},
	})

	items, total, err := svcs.News.SearchPublished(ctx, &models.NewsFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 3)

	byTitle := map[string]*models.News{}
	for _, n := range items {
		byTitle[n.Title] = n
	}
	assert.True(t, byTitle["Front Page"].Featured)
	assert.False(t, byTitle["Front Page"].IsBreaking)
	assert.True(t, byTitle["Just In"].IsBreaking)
	assert.False(t, byTitle["Sit Down"].Featured)
	assert.False(t, byTitle["Sit Down"].IsBreaking)
}

func TestSearchPublished_ClassificationFilter(t *testing.T) {
	svcs, newsRepo, _ := newTestServices()
	ctx := context.Background()

	newsRepo.SeedClassification(models.Classification{ID: 4, Name: "Results", Priority: 1, IsActive: true})

	createArticle(t, svcs, &models.CreateNewsInput{
		Title: "With Results", Status: models.StatusPublished, SelectedClassifications: []int64{4},
	})
	createArticle(t, svcs, &models.CreateNewsInput{
		Title: "Without", Status: models.StatusPublished,
	})

	classificationID := int64(4)
	items, total, err := svcs.News.SearchPublished(ctx, &models.NewsFilter{ClassificationID: &classificationID})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "With Results", items[0].Title)
}

func TestGetNewsPageData(t *testing.T) {
	svcs, newsRepo, classificationRepo := newTestServices()
	ctx := context.Background()

	require.NoError(t, classificationRepo.Create(ctx, &models.Classification{Name: "Breaking", Priority: 2, IsActive: true}))
	require.NoError(t, classificationRepo.Create(ctx, &models.Classification{Name: "Featured", Priority: 1, IsActive: true}))
	require.NoError(t, classificationRepo.Create(ctx, &models.Classification{Name: "Retired", Priority: 3, IsActive: false}))

	newsRepo.SeedClassification(models.Classification{ID: 1, Name: "Breaking", Priority: 2, IsActive: true})
	newsRepo.SeedClassification(models.Classification{ID: 2, Name: "Featured", Priority: 1, IsActive: true})

	// eight published breaking stories, one featured, one draft
	for i := 0; i < 8; i++ {
		createArticle(t, svcs, &models.CreateNewsInput{
			Title: "Breaking " + string(rune('A'+i)), Status: models.StatusPublished,
			SelectedClassifications: []int64{1},
		})
	}
	createArticle(t, svcs, &models.CreateNewsInput{
		Title: "Featured One", Status: models.StatusPublished, SelectedClassifications: []int64{2},
	})
	createArticle(t, svcs, &models.CreateNewsInput{
		Title: "Unpublished", Status: models.StatusDraft, SelectedClassifications: []int64{1},
	})

	page, err := svcs.News.GetNewsPageData(ctx)
	require.NoError(t, err)

	// inactive classifications are excluded, active ones come back in
	// priority order
	require.Len(t, page.Sections, 2)
	assert.Equal(t, "Featured", page.Sections[0].Classification.Name)
	assert.Equal(t, "Breaking", page.Sections[1].Classification.Name)

	featured := page.Sections[0]
	assert.Len(t, featured.Items, 1)
	assert.Equal(t, 1, featured.TotalCount)
	assert.False(t, featured.HasMore)

	breaking := page.Sections[1]
	assert.Len(t, breaking.Items, 6)
	assert.Equal(t, 8, breaking.TotalCount)
	assert.True(t, breaking.HasMore)

	assert.Equal(t, 9, page.TotalPublished)
}

func TestGetNewsByClassification(t *testing.T) {
	svcs, newsRepo, classificationRepo := newTestServices()
	ctx := context.Background()

	require.NoError(t, classificationRepo.Create(ctx, &models.Classification{Name: "Results", Priority: 1, IsActive: true}))
	newsRepo.SeedClassification(models.Classification{ID: 1, Name: "Results", Priority: 1, IsActive: true})

	for i := 0; i < 5; i++ {
		createArticle(t, svcs, &models.CreateNewsInput{
			Title: "Result " + string(rune('A'+i)), Status: models.StatusPublished,
			SelectedClassifications: []int64{1},
		})
	}

	section, err := svcs.News.GetNewsByClassification(ctx, 1, 2, 2)
	require.NoError(t, err)
	assert.Len(t, section.Items, 2)
	assert.Equal(t, 5, section.TotalCount)
	assert.True(t, section.HasMore)

	section, err = svcs.News.GetNewsByClassification(ctx, 1, 2, 4)
	require.NoError(t, err)
	assert.Len(t, section.Items, 1)
	assert.False(t, section.HasMore)

	_, err = svcs.News.GetNewsByClassification(ctx, 99, 2, 0)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGetByID_AttachesRelations(t *testing.T) {
	svcs, newsRepo, _ := newTestServices()
	ctx := context.Background()

	newsRepo.SeedTag(models.Tag{ID: 1, Name: "athletics", IsActive: true})
	newsRepo.SeedTag(models.Tag{ID: 2, Name: "swimming", IsActive: true})
	newsRepo.SeedClassification(models.Classification{ID: 1, Name: "Featured", Priority: 2, IsActive: true})
	newsRepo.SeedClassification(models.Classification{ID: 2, Name: "Breaking", Priority: 1, IsActive: true})

	n := createArticle(t, svcs, &models.CreateNewsInput{
		Title:                   "Full Story",
		SelectedTags:            []int64{1, 2, 77}, // 77 does not resolve and is dropped
		SelectedClassifications: []int64{1, 2},
	})

	got, err := svcs.News.GetByID(ctx, n.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	require.Len(t, got.Tags, 2)
	assert.Equal(t, "athletics", got.Tags[0].Name)

	// classifications come back priority ascending
	require.Len(t, got.Classifications, 2)
	assert.Equal(t, "Breaking", got.Classifications[0].Name)
	assert.Equal(t, "Featured", got.Classifications[1].Name)
}

func TestMediaURLResolution(t *testing.T) {
	svcs, _, _ := newTestServices()
	ctx := context.Background()

	relative := "images/opening.jpg"
	absolute := "https://elsewhere.example/pic.png"
	n := createArticle(t, svcs, &models.CreateNewsInput{
		Title:         "Pictures",
		FeaturedImage: &relative,
		OtherImages:   []string{"gallery/one.jpg", absolute},
	})

	got, err := svcs.News.GetByID(ctx, n.ID)
	require.NoError(t, err)
	require.NotNil(t, got.FeaturedImage)
	assert.Equal(t, "https://cdn.test/uploads/images/opening.jpg", *got.FeaturedImage)
	assert.Equal(t, "https://cdn.test/uploads/gallery/one.jpg", got.OtherImages[0])
	assert.Equal(t, absolute, got.OtherImages[1])
}

func TestStats(t *testing.T) {
	svcs, _, _ := newTestServices()
	ctx := context.Background()

	createArticle(t, svcs, &models.CreateNewsInput{Title: "P1", Status: models.StatusPublished})
	p2 := createArticle(t, svcs, &models.CreateNewsInput{Title: "P2", Status: models.StatusPublished})
	createArticle(t, svcs, &models.CreateNewsInput{Title: "D1"})
	createArticle(t, svcs, &models.CreateNewsInput{Title: "A1", Status: models.StatusArchived})

	_, err := svcs.News.IncrementViewCount(ctx, p2.ID)
	require.NoError(t, err)

	stats, err := svcs.News.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Published)
	assert.Equal(t, 1, stats.Drafts)
	assert.Equal(t, 1, stats.Archived)
	assert.EqualValues(t, 1, stats.TotalViews)

	public, err := svcs.News.PublicStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, public.TotalPublished)
	assert.EqualValues(t, 1, public.TotalViews)
}

func TestEndToEndArticleLifecycle(t *testing.T) {
	svcs, _, _ := newTestServices()
	ctx := context.Background()

	created, err := svcs.News.Create(ctx, &models.CreateNewsInput{
		Title:      "Para Games Opening",
		Excerpt:    "The ceremony begins",
		Content:    wordsOf(250),
		CategoryID: 1,
		Status:     models.StatusDraft,
	})
	require.NoError(t, err)
	assert.Equal(t, "para-games-opening", created.Slug)
	assert.Equal(t, 3, created.ReadTime)
	assert.Nil(t, created.PublishedAt)

	published := models.StatusPublished
	updated, err := svcs.News.Update(ctx, created.ID, &models.UpdateNewsInput{Status: &published})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	assert.WithinDuration(t, time.Now(), *updated.PublishedAt, 2*time.Second)
	assert.Equal(t, "para-games-opening", updated.Slug)

	_, err = svcs.News.IncrementViewCount(ctx, created.ID)
	require.NoError(t, err)
	viewed, err := svcs.News.IncrementViewCount(ctx, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, viewed.ViewCount)

	deleted, err := svcs.News.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)

	got, err := svcs.News.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
