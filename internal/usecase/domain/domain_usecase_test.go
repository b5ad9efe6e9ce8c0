package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jarrensj/monkfish/internal/entities"
	"github.com/jarrensj/monkfish/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) GetUserByWallet(ctx context.Context, walletAddress string) (*entities.User, error) {
	args := m.Called(ctx, walletAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) CreateUser(ctx context.Context, walletAddress string) (*entities.User, error) {
	args := m.Called(ctx, walletAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) SetUsername(ctx context.Context, userID, username string) (*entities.User, error) {
	args := m.Called(ctx, userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) GetTeamByName(ctx context.Context, name string) (*entities.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) GetTeamBySlug(ctx context.Context, slug string) (*entities.Team, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) ListTeams(ctx context.Context, limit, offset int) ([]entities.Team, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *repoMock) TeamSlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *repoMock) AppendTeamWallet(ctx context.Context, teamID string, wallet entities.WalletAddress) error {
	args := m.Called(ctx, teamID, wallet)
	return args.Error(0)
}

func (m *repoMock) AddMember(ctx context.Context, teamID, userID, role string) (*entities.TeamMember, error) {
	args := m.Called(ctx, teamID, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamMember), args.Error(1)
}

func (m *repoMock) IsMember(ctx context.Context, teamID, userID string) (bool, error) {
	args := m.Called(ctx, teamID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *repoMock) Stats(ctx context.Context) (entities.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return entities.Stats{}, args.Error(1)
	}
	return args.Get(0).(entities.Stats), args.Error(1)
}

type walletMock struct{ mock.Mock }

var _ WalletGenerator = (*walletMock)(nil)

func (m *walletMock) Generate(ctx context.Context, teamName, ownerID string) (*entities.GeneratedWallet, error) {
	args := m.Called(ctx, teamName, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GeneratedWallet), args.Error(1)
}

func newTestUsecase(repo *repoMock, wallets *walletMock) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, wallets, time.Second)
}

func TestUsecase_CreateTeamValidation(t *testing.T) {
	tests := []struct {
		name     string
		teamName string
	}{
		{name: "empty", teamName: ""},
		{name: "whitespace_only", teamName: "   "},
		{name: "too_long", teamName: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
		{name: "special_chars", teamName: "Team <script>"},
		{name: "punctuation", teamName: "Kyle's Team"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := &repoMock{}
			uc := newTestUsecase(repo, &walletMock{})

			_, err := uc.CreateTeam(context.Background(), tt.teamName, "owner-1", nil)
			require.ErrorIs(t, err, entities.ErrInvalidName)
			repo.AssertNotCalled(t, "TeamSlugExists", mock.Anything, mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "CreateTeam", mock.Anything, mock.Anything)
		})
	}
}

func TestUsecase_CreateTeamMissingOwner(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &walletMock{})

	_, err := uc.CreateTeam(context.Background(), "Team A", "", nil)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateTeam", mock.Anything, mock.Anything)
}

func TestUsecase_CreateTeamAllocatesBaseSlug(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &walletMock{})

	repo.On("TeamSlugExists", mock.Anything, "acme-corp", "").Return(false, nil)
	expected := &entities.Team{ID: "t1", TeamName: "Acme Corp", Slug: "acme-corp", Owner: "owner-1"}
	repo.On("CreateTeam", mock.Anything, mock.MatchedBy(func(team entities.Team) bool {
		return team.TeamName == "Acme Corp" && team.Slug == "acme-corp" && team.Owner == "owner-1"
	})).Return(expected, nil)

	team, err := uc.CreateTeam(context.Background(), "  Acme Corp ", "owner-1", nil)
	require.NoError(t, err)
	require.Equal(t, expected, team)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateTeamCountsPastConflicts(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &walletMock{})

	repo.On("TeamSlugExists", mock.Anything, "acme-corp", "").Return(true, nil)
	repo.On("TeamSlugExists", mock.Anything, "acme-corp-1", "").Return(true, nil)
	repo.On("TeamSlugExists", mock.Anything, "acme-corp-2", "").Return(false, nil)
	repo.On("CreateTeam", mock.Anything, mock.MatchedBy(func(team entities.Team) bool {
		return team.Slug == "acme-corp-2"
	})).Return(&entities.Team{Slug: "acme-corp-2"}, nil)

	team, err := uc.CreateTeam(context.Background(), "Acme Corp", "owner-1", nil)
	require.NoError(t, err)
	require.Equal(t, "acme-corp-2", team.Slug)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateTeamSlugExhausted(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &walletMock{})

	repo.On("TeamSlugExists", mock.Anything, mock.Anything, "").Return(true, nil)

	_, err := uc.CreateTeam(context.Background(), "Acme Corp", "owner-1", nil)
	require.ErrorIs(t, err, entities.ErrSlugExhausted)
	require.NotErrorIs(t, err, entities.ErrTeamExists)
	repo.AssertNotCalled(t, "CreateTeam", mock.Anything, mock.Anything)
}

func TestUsecase_CreateTeamInsertConflictNotRetried(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &walletMock{})

	repo.On("TeamSlugExists", mock.Anything, "acme-corp", "").Return(false, nil).Once()
	repo.On("CreateTeam", mock.Anything, mock.Anything).Return(nil, entities.ErrTeamExists).Once()

	_, err := uc.CreateTeam(context.Background(), "Acme Corp", "owner-1", nil)
	require.ErrorIs(t, err, entities.ErrTeamExists)
	repo.AssertExpectations(t)
	repo.AssertNumberOfCalls(t, "TeamSlugExists", 1)
}

func TestUsecase_BindIdentityExisting(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &walletMock{})

	existing := &entities.User{ID: "u1", WalletAddress: "wallet-A"}
	repo.On("GetUserByWallet", mock.Anything, "wallet-A").Return(existing, nil)

	usr, err := uc.BindIdentity(context.Background(), "wallet-A")
	require.NoError(t, err)
	require.Equal(t, existing, usr)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUsecase_BindIdentityCreatesOnFirstSight(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &walletMock{})

	created := &entities.User{ID: "u1", WalletAddress: "wallet-A"}
	repo.On("GetUserByWallet", mock.Anything, "wallet-A").Return(nil, entities.ErrUserNotFound).Once()
	repo.On("CreateUser", mock.Anything, "wallet-A").Return(created, nil).Once()

	usr, err := uc.BindIdentity(context.Background(), "wallet-A")
	require.NoError(t, err)
	require.Equal(t, created, usr)
	repo.AssertExpectations(t)
}

func TestUsecase_BindIdentityLosesCreateRace(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &walletMock{})

	winner := &entities.User{ID: "u1", WalletAddress: "wallet-A"}
	repo.On("GetUserByWallet", mock.Anything, "wallet-A").Return(nil, entities.ErrUserNotFound).Once()
	repo.On("CreateUser", mock.Anything, "wallet-A").Return(nil, entities.ErrUserExists).Once()
	repo.On("GetUserByWallet", mock.Anything, "wallet-A").Return(winner, nil).Once()

	usr, err := uc.BindIdentity(context.Background(), "wallet-A")
	require.NoError(t, err)
	require.Equal(t, winner, usr)
	repo.AssertExpectations(t)
}

func TestUsecase_BindIdentityLookupFailure(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &walletMock{})

	repo.On("GetUserByWallet", mock.Anything, "wallet-A").Return(nil, errors.New("connection reset"))

	_, err := uc.BindIdentity(context.Background(), "wallet-A")
	require.Error(t, err)
	require.NotErrorIs(t, err, entities.ErrUserNotFound)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUsecase_BindIdentityValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &walletMock{})

	_, err := uc.BindIdentity(context.Background(), "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "GetUserByWallet", mock.Anything, mock.Anything)
}

func TestUsecase_SetUsernameValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &walletMock{})

	_, err := uc.SetUsername(context.Background(), "u1", "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.SetUsername(context.Background(), "", "kyle")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_JoinTeamDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &walletMock{})

	team := &entities.Team{ID: "t1", TeamName: "Acme Corp", Owner: "owner-1"}
	member := &entities.TeamMember{ID: "m1", TeamID: "t1", UserID: "u2", Role: entities.RoleMember}
	repo.On("GetTeamByName", mock.Anything, "Acme Corp").Return(team, nil)
	repo.On("AddMember", mock.Anything, "t1", "u2", entities.RoleMember).Return(member, nil)

	got, err := uc.JoinTeam(context.Background(), "Acme Corp", "u2")
	require.NoError(t, err)
	require.Equal(t, member, got)
	repo.AssertExpectations(t)
}

func TestUsecase_JoinTeamNotFound(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &walletMock{})

	repo.On("GetTeamByName", mock.Anything, "Ghost Team").Return(nil, entities.ErrTeamNotFound)

	_, err := uc.JoinTeam(context.Background(), "Ghost Team", "u2")
	require.ErrorIs(t, err, entities.ErrTeamNotFound)
	repo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_JoinTeamDuplicate(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &walletMock{})

	team := &entities.Team{ID: "t1", TeamName: "Acme Corp"}
	repo.On("GetTeamByName", mock.Anything, "Acme Corp").Return(team, nil)
	repo.On("AddMember", mock.Anything, "t1", "u2", entities.RoleMember).Return(nil, entities.ErrAlreadyMember)

	_, err := uc.JoinTeam(context.Background(), "Acme Corp", "u2")
	require.ErrorIs(t, err, entities.ErrAlreadyMember)
}

func TestUsecase_GenerateTeamWalletOwnerWithoutMemberRow(t *testing.T) {
	repo := &repoMock{}
	wallets := &walletMock{}
	uc := newTestUsecase(repo, wallets)

	team := &entities.Team{ID: "t1", TeamName: "Acme Corp", Owner: "owner-1"}
	generated := &entities.GeneratedWallet{ID: "w1", PublicAddress: "addr123", TeamName: "Acme Corp"}
	repo.On("GetTeamByName", mock.Anything, "Acme Corp").Return(team, nil)
	wallets.On("Generate", mock.Anything, "Acme Corp", "owner-1").Return(generated, nil)
	repo.On("AppendTeamWallet", mock.Anything, "t1", entities.WalletAddress{Chain: "solana", Address: "addr123"}).Return(nil)

	got, err := uc.GenerateTeamWallet(context.Background(), "Acme Corp", "owner-1")
	require.NoError(t, err)
	require.Equal(t, generated, got)
	repo.AssertNotCalled(t, "IsMember", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestUsecase_GenerateTeamWalletMemberAuthorized(t *testing.T) {
	repo := &repoMock{}
	wallets := &walletMock{}
	uc := newTestUsecase(repo, wallets)

	team := &entities.Team{ID: "t1", TeamName: "Acme Corp", Owner: "owner-1"}
	generated := &entities.GeneratedWallet{ID: "w1", PublicAddress: "addr123", TeamName: "Acme Corp"}
	repo.On("GetTeamByName", mock.Anything, "Acme Corp").Return(team, nil)
	repo.On("IsMember", mock.Anything, "t1", "u2").Return(true, nil)
	wallets.On("Generate", mock.Anything, "Acme Corp", "u2").Return(generated, nil)
	repo.On("AppendTeamWallet", mock.Anything, "t1", mock.Anything).Return(nil)

	_, err := uc.GenerateTeamWallet(context.Background(), "Acme Corp", "u2")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_GenerateTeamWalletStrangerDenied(t *testing.T) {
	repo := &repoMock{}
	wallets := &walletMock{}
	uc := newTestUsecase(repo, wallets)

	team := &entities.Team{ID: "t1", TeamName: "Acme Corp", Owner: "owner-1"}
	repo.On("GetTeamByName", mock.Anything, "Acme Corp").Return(team, nil)
	repo.On("IsMember", mock.Anything, "t1", "u9").Return(false, nil)

	_, err := uc.GenerateTeamWallet(context.Background(), "Acme Corp", "u9")
	require.ErrorIs(t, err, entities.ErrUnauthorized)
	wallets.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_GenerateTeamWalletFailClosed(t *testing.T) {
	repo := &repoMock{}
	wallets := &walletMock{}
	uc := newTestUsecase(repo, wallets)

	team := &entities.Team{ID: "t1", TeamName: "Acme Corp", Owner: "owner-1"}
	repo.On("GetTeamByName", mock.Anything, "Acme Corp").Return(team, nil)
	repo.On("IsMember", mock.Anything, "t1", "u2").Return(false, errors.New("connection reset"))

	_, err := uc.GenerateTeamWallet(context.Background(), "Acme Corp", "u2")
	require.ErrorIs(t, err, entities.ErrUnauthorized)
	wallets.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_GenerateTeamWalletNewTeamImplicitGrant(t *testing.T) {
	repo := &repoMock{}
	wallets := &walletMock{}
	uc := newTestUsecase(repo, wallets)

	generated := &entities.GeneratedWallet{ID: "w1", PublicAddress: "addr123", TeamName: "Fresh Team"}
	repo.On("GetTeamByName", mock.Anything, "Fresh Team").Return(nil, entities.ErrTeamNotFound)
	wallets.On("Generate", mock.Anything, "Fresh Team", "u2").Return(generated, nil)

	got, err := uc.GenerateTeamWallet(context.Background(), "Fresh Team", "u2")
	require.NoError(t, err)
	require.Equal(t, generated, got)
	repo.AssertNotCalled(t, "IsMember", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "AppendTeamWallet", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_GenerateTeamWalletUpstreamFailure(t *testing.T) {
	repo := &repoMock{}
	wallets := &walletMock{}
	uc := newTestUsecase(repo, wallets)

	team := &entities.Team{ID: "t1", TeamName: "Acme Corp", Owner: "owner-1"}
	repo.On("GetTeamByName", mock.Anything, "Acme Corp").Return(team, nil)
	upstream := fmt.Errorf("%w: keys unavailable", entities.ErrWalletBackend)
	wallets.On("Generate", mock.Anything, "Acme Corp", "owner-1").Return(nil, upstream)

	_, err := uc.GenerateTeamWallet(context.Background(), "Acme Corp", "owner-1")
	require.ErrorIs(t, err, entities.ErrWalletBackend)
	require.Contains(t, err.Error(), "keys unavailable")
	repo.AssertNotCalled(t, "AppendTeamWallet", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_TeamsDefaultsLimit(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &walletMock{})

	repo.On("ListTeams", mock.Anything, 50, 0).Return([]entities.Team{}, nil)

	_, err := uc.Teams(context.Background(), 0, -3)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_TeamBySlugValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &walletMock{})

	_, err := uc.TeamBySlug(context.Background(), "  ")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "GetTeamBySlug", mock.Anything, mock.Anything)
}
