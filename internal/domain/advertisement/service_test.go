package advertisement

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/mwork/mwork-ads/internal/domain/campaign"
	"github.com/mwork/mwork-ads/internal/pkg/apperror"
)

type fakeRepo struct {
	ads map[uuid.UUID]*Advertisement
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{ads: map[uuid.UUID]*Advertisement{}}
}

func (f *fakeRepo) Create(ctx context.Context, ad *Advertisement) error {
	f.ads[ad.ID] = ad
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Advertisement, error) {
	ad, ok := f.ads[id]
	if !ok {
		return nil, apperror.NotFound("advertisement", id.String())
	}
	copied := *ad
	return &copied, nil
}

func (f *fakeRepo) Update(ctx context.Context, ad *Advertisement) error {
	if _, ok := f.ads[ad.ID]; !ok {
		return apperror.NotFound("advertisement", ad.ID.String())
	}
	f.ads[ad.ID] = ad
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.ads[id]; !ok {
		return apperror.NotFound("advertisement", id.String())
	}
	delete(f.ads, id)
	return nil
}

func (f *fakeRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*Advertisement, error) {
	out := []*Advertisement{}
	for _, ad := range f.ads {
		if ad.CampaignID == campaignID {
			out = append(out, ad)
		}
	}
	return out, nil
}

type fakeCampaignReader struct {
	campaigns map[uuid.UUID]*campaign.Campaign
}

func (f *fakeCampaignReader) GetByID(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error) {
	c, ok := f.campaigns[id]
	if !ok {
		return nil, apperror.NotFound("campaign", id.String())
	}
	return c, nil
}

type fakeStorage struct {
	deleted []string
	err     error
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return f.err
}

func (f *fakeStorage) GetURL(key string) string { return "https://cdn.test/" + key }

func campaignIn(status campaign.Status) *campaign.Campaign {
	return &campaign.Campaign{ID: uuid.New(), Title: "promo", Status: status}
}

func newTestService(c *campaign.Campaign) (*Service, *fakeRepo, *fakeStorage) {
	repo := newFakeRepo()
	media := &fakeStorage{}
	campaigns := &fakeCampaignReader{campaigns: map[uuid.UUID]*campaign.Campaign{}}
	if c != nil {
		campaigns.campaigns[c.ID] = c
	}
	return NewService(repo, campaigns, media), repo, media
}

func TestCreateOnDraftCampaign(t *testing.T) {
	c := campaignIn(campaign.StatusDraft)
	svc, repo, _ := newTestService(c)

	ad, err := svc.Create(context.Background(), &CreateAdvertisementRequest{
		CampaignID: c.ID,
		MediaType:  "image",
		MediaKey:   "ads/banner.jpg",
		Caption:    "Hire faster",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := repo.ads[ad.ID]; !ok {
		t.Fatal("expected advertisement persisted")
	}
	if ad.MediaURL != "https://cdn.test/ads/banner.jpg" {
		t.Fatalf("expected resolved media URL, got %q", ad.MediaURL)
	}
}

func TestCreateOnActiveAndPausedCampaigns(t *testing.T) {
	for _, status := range []campaign.Status{campaign.StatusActive, campaign.StatusPaused} {
		c := campaignIn(status)
		svc, _, _ := newTestService(c)

		_, err := svc.Create(context.Background(), &CreateAdvertisementRequest{
			CampaignID: c.ID,
			MediaType:  "video",
			MediaKey:   "ads/clip.mp4",
		})
		if err != nil {
			t.Fatalf("status %s: expected no error, got %v", status, err)
		}
	}
}

func TestCreateOnTerminalCampaignRejected(t *testing.T) {
	for _, status := range []campaign.Status{campaign.StatusCompleted, campaign.StatusCancelled} {
		c := campaignIn(status)
		svc, _, _ := newTestService(c)

		_, err := svc.Create(context.Background(), &CreateAdvertisementRequest{
			CampaignID: c.ID,
			MediaType:  "image",
			MediaKey:   "ads/banner.jpg",
		})
		if !apperror.IsInvalidState(err) {
			t.Fatalf("status %s: expected invalid state, got %v", status, err)
		}
	}
}

func TestCreateRejectsMissingCampaign(t *testing.T) {
	svc, _, _ := newTestService(nil)

	_, err := svc.Create(context.Background(), &CreateAdvertisementRequest{
		CampaignID: uuid.New(),
		MediaType:  "image",
		MediaKey:   "ads/banner.jpg",
	})
	if !apperror.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateRejectsUnknownMediaType(t *testing.T) {
	c := campaignIn(campaign.StatusDraft)
	svc, _, _ := newTestService(c)

	_, err := svc.Create(context.Background(), &CreateAdvertisementRequest{
		CampaignID: c.ID,
		MediaType:  "gif",
		MediaKey:   "ads/banner.gif",
	})
	if !apperror.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateReleasesReplacedMedia(t *testing.T) {
	c := campaignIn(campaign.StatusActive)
	svc, _, media := newTestService(c)

	ad, _ := svc.Create(context.Background(), &CreateAdvertisementRequest{
		CampaignID: c.ID,
		MediaType:  "image",
		MediaKey:   "ads/old.jpg",
	})

	newKey := "ads/new.jpg"
	updated, err := svc.Update(context.Background(), ad.ID, &UpdateAdvertisementRequest{MediaKey: &newKey})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.MediaKey != newKey {
		t.Fatalf("expected media key replaced, got %q", updated.MediaKey)
	}
	if len(media.deleted) != 1 || media.deleted[0] != "ads/old.jpg" {
		t.Fatalf("expected old blob released, got %v", media.deleted)
	}
}

func TestUpdateKeepsMediaWhenKeyUnchanged(t *testing.T) {
	c := campaignIn(campaign.StatusActive)
	svc, _, media := newTestService(c)

	ad, _ := svc.Create(context.Background(), &CreateAdvertisementRequest{
		CampaignID: c.ID,
		MediaType:  "image",
		MediaKey:   "ads/same.jpg",
	})

	sameKey := "ads/same.jpg"
	caption := "Updated caption"
	updated, err := svc.Update(context.Background(), ad.ID, &UpdateAdvertisementRequest{
		Caption:  &caption,
		MediaKey: &sameKey,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Caption != caption {
		t.Fatalf("expected caption updated, got %q", updated.Caption)
	}
	if len(media.deleted) != 0 {
		t.Fatalf("unchanged media key must not release the blob, got %v", media.deleted)
	}
}

func TestDeleteReleasesMedia(t *testing.T) {
	c := campaignIn(campaign.StatusActive)
	svc, repo, media := newTestService(c)

	ad, _ := svc.Create(context.Background(), &CreateAdvertisementRequest{
		CampaignID: c.ID,
		MediaType:  "video",
		MediaKey:   "ads/clip.mp4",
	})

	if err := svc.Delete(context.Background(), ad.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := repo.ads[ad.ID]; ok {
		t.Fatal("expected advertisement removed")
	}
	if len(media.deleted) != 1 || media.deleted[0] != "ads/clip.mp4" {
		t.Fatalf("expected blob released, got %v", media.deleted)
	}
}

func TestDeleteSurvivesMediaFailure(t *testing.T) {
	c := campaignIn(campaign.StatusActive)
	repo := newFakeRepo()
	media := &fakeStorage{err: errors.New("cdn down")}
	campaigns := &fakeCampaignReader{campaigns: map[uuid.UUID]*campaign.Campaign{c.ID: c}}
	svc := NewService(repo, campaigns, media)

	ad, _ := svc.Create(context.Background(), &CreateAdvertisementRequest{
		CampaignID: c.ID,
		MediaType:  "image",
		MediaKey:   "ads/banner.jpg",
	})

	if err := svc.Delete(context.Background(), ad.ID); err != nil {
		t.Fatalf("blob release failure must not fail the delete, got %v", err)
	}
}

func TestListByCampaignEmptyIsNotAnError(t *testing.T) {
	c := campaignIn(campaign.StatusDraft)
	svc, _, _ := newTestService(c)

	ads, err := svc.ListByCampaign(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ads) != 0 {
		t.Fatalf("expected empty list, got %d", len(ads))
	}
}
