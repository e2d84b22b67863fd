package moderation

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/entities"
	"Local-Flavor-Backend/pkg/recipe"
	"Local-Flavor-Backend/pkg/user"
)

type memoryModeration struct {
	recipes map[uuid.UUID]*entities.Recipe
	entries map[uuid.UUID]*entities.ModerationEntry
	clock   time.Time
}

func newMemoryModeration() *memoryModeration {
	return &memoryModeration{
		recipes: map[uuid.UUID]*entities.Recipe{},
		entries: map[uuid.UUID]*entities.ModerationEntry{},
		clock:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memoryModeration) CreateSubmission(_ context.Context, r *entities.Recipe) (*entities.ModerationEntry, error) {
	m.clock = m.clock.Add(time.Minute)
	r.ID = uuid.New()
	r.CreatedAt = m.clock
	entry := &entities.ModerationEntry{ID: uuid.New(), RecipeID: r.ID, Status: domain.ModerationPending, CreatedAt: m.clock}
	m.recipes[r.ID] = r
	m.entries[entry.ID] = entry
	return entry, nil
}

func (m *memoryModeration) GetPendingQueue(context.Context) ([]domain.ModerationQueueItem, error) {
	var items []domain.ModerationQueueItem
	for _, e := range m.entries {
		if e.Status != domain.ModerationPending {
			continue
		}
		items = append(items, domain.ModerationQueueItem{
			ModerationID:   e.ID.String(),
			Status:         e.Status,
			SubmissionDate: e.CreatedAt,
			RecipeID:       e.RecipeID.String(),
			Name:           m.recipes[e.RecipeID].Name,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].SubmissionDate.After(items[j].SubmissionDate) })
	return items, nil
}

func (m *memoryModeration) GetEntryByID(_ context.Context, id string) (*entities.ModerationEntry, error) {
	e, ok := m.entries[uuid.MustParse(id)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (m *memoryModeration) Decide(_ context.Context, id string, d Decision) (*entities.ModerationEntry, error) {
	e, ok := m.entries[uuid.MustParse(id)]
	if !ok {
		return nil, domain.ErrModerationNotFound
	}
	if e.Status != domain.ModerationPending {
		return nil, domain.ErrAlreadyModerated
	}
	e.Status = d.Status
	e.ReviewerID = d.ReviewerID
	e.ReviewNotes = d.Notes
	e.ReviewDate = &d.At

	r := m.recipes[e.RecipeID]
	r.IsApproved = d.Status == domain.ModerationApproved
	r.ApprovalDate = &d.At
	return e, nil
}

// recipeLookup serves only the reads the moderation service performs.
type recipeLookup struct {
	recipe.RecipeRepository
	store *memoryModeration
}

func (l recipeLookup) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	r, ok := l.store.recipes[uuid.MustParse(id)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

type userLookup struct {
	user.UserRepository
	users map[string]*entities.User
}

func (l userLookup) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	u, ok := l.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

type sentMail struct{ to, subject string }

type recordingMailer struct{ sent []sentMail }

func (r *recordingMailer) SendMail(to, subject, _ string) error {
	r.sent = append(r.sent, sentMail{to: to, subject: subject})
	return nil
}

type moderationFixture struct {
	store   *memoryModeration
	mailer  *recordingMailer
	service ModerationService
	cook    domain.Identity
	admin   domain.Identity
}

func newModerationFixture() moderationFixture {
	store := newMemoryModeration()
	mailer := &recordingMailer{}
	cookID := uuid.New()
	users := map[string]*entities.User{
		cookID.String(): {ID: cookID, Username: "cook", Email: "cook@localflavor.test"},
	}

	return moderationFixture{
		store:   store,
		mailer:  mailer,
		service: NewModerationService(store, recipeLookup{store: store}, userLookup{users: users}, mailer, "https://flavor.test"),
		cook:    domain.Identity{UserID: cookID.String(), Role: domain.RoleUser},
		admin:   domain.Identity{UserID: uuid.NewString(), Role: domain.RoleAdmin},
	}
}

func floatPtr(v float64) *float64 { return &v }

func validSubmission() domain.SubmitRecipeRequest {
	return domain.SubmitRecipeRequest{
		Name:         "Bobotie",
		Ingredients:  "minced beef, curry powder, bread, milk, eggs",
		Instructions: "1. Brown the mince\n2. Top with custard\n3. Bake",
		LocationLat:  floatPtr(-33.9249),
		LocationLng:  floatPtr(18.4241),
		City:         "Cape Town",
		Country:      "South Africa",
	}
}

func TestModerationService_SubmitRequiresInstructions(t *testing.T) {
	f := newModerationFixture()
	req := validSubmission()
	req.Instructions = "   "

	_, err := f.service.SubmitRecipe(context.Background(), req, f.cook)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "instructions", verr.Field)
	assert.Empty(t, f.store.recipes)
	assert.Empty(t, f.store.entries)
}

func TestModerationService_SubmitRequiresCoordinates(t *testing.T) {
	f := newModerationFixture()
	req := validSubmission()
	req.LocationLng = nil

	_, err := f.service.SubmitRecipe(context.Background(), req, f.cook)

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Empty(t, f.store.entries)
}

func TestModerationService_SubmitCreatesPendingEntry(t *testing.T) {
	f := newModerationFixture()

	res, err := f.service.SubmitRecipe(context.Background(), validSubmission(), f.cook)
	require.NoError(t, err)

	assert.Equal(t, domain.MessageSuccessSubmitRecipe, res.Message)
	submitted := f.store.recipes[uuid.MustParse(res.ID)]
	require.NotNil(t, submitted)
	assert.False(t, submitted.IsApproved)
	assert.Equal(t, domain.SourceUser, submitted.SourceType)
	assert.Equal(t, f.cook.UserID, submitted.UserID.String())
	assert.Equal(t, domain.ModerationPending, f.store.entries[uuid.MustParse(res.ModerationID)].Status)
}

func TestModerationService_ApproveRemovesFromQueueAndPublishes(t *testing.T) {
	f := newModerationFixture()
	ctx := context.Background()

	first, err := f.service.SubmitRecipe(ctx, validSubmission(), f.cook)
	require.NoError(t, err)
	second, err := f.service.SubmitRecipe(ctx, validSubmission(), f.cook)
	require.NoError(t, err)

	queue, err := f.service.GetModerationQueue(ctx)
	require.NoError(t, err)
	require.Len(t, queue, 2)
	assert.Equal(t, second.ModerationID, queue[0].ModerationID)

	res, err := f.service.ModerateRecipe(ctx, first.ModerationID, domain.ModerateRequest{Status: domain.ModerationApproved}, f.admin)
	require.NoError(t, err)
	assert.Equal(t, "Recipe approved", res.Message)
	assert.Equal(t, first.ID, res.RecipeID)

	queue, err = f.service.GetModerationQueue(ctx)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, second.ModerationID, queue[0].ModerationID)

	assert.True(t, f.store.recipes[uuid.MustParse(first.ID)].IsApproved)
	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "cook@localflavor.test", f.mailer.sent[0].to)
}

func TestModerationService_TerminalEntriesStayConsistent(t *testing.T) {
	f := newModerationFixture()
	ctx := context.Background()

	sub, err := f.service.SubmitRecipe(ctx, validSubmission(), f.cook)
	require.NoError(t, err)

	_, err = f.service.ModerateRecipe(ctx, sub.ModerationID, domain.ModerateRequest{Status: domain.ModerationRejected, Notes: "needs detail"}, f.admin)
	require.NoError(t, err)
	assert.False(t, f.store.recipes[uuid.MustParse(sub.ID)].IsApproved)

	_, err = f.service.ModerateRecipe(ctx, sub.ModerationID, domain.ModerateRequest{Status: domain.ModerationApproved}, f.admin)
	assert.ErrorIs(t, err, domain.ErrAlreadyModerated)

	entry := f.store.entries[uuid.MustParse(sub.ModerationID)]
	assert.Equal(t, domain.ModerationRejected, entry.Status)
	assert.False(t, f.store.recipes[uuid.MustParse(sub.ID)].IsApproved)
}

func TestModerationService_ModerateValidatesInput(t *testing.T) {
	f := newModerationFixture()
	ctx := context.Background()

	_, err := f.service.ModerateRecipe(ctx, "42", domain.ModerateRequest{Status: domain.ModerationApproved}, f.admin)
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	_, err = f.service.ModerateRecipe(ctx, uuid.NewString(), domain.ModerateRequest{Status: domain.ModerationPending}, f.admin)
	assert.ErrorIs(t, err, domain.ErrInvalidModerationStatus)

	_, err = f.service.ModerateRecipe(ctx, uuid.NewString(), domain.ModerateRequest{Status: domain.ModerationApproved}, f.admin)
	assert.ErrorIs(t, err, domain.ErrModerationNotFound)
}
