package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hanksha/court-booking-backend/access"
	"github.com/hanksha/court-booking-backend/actionlog"
	"github.com/hanksha/court-booking-backend/auth"
	au_mocks "github.com/hanksha/court-booking-backend/auth/mocks"
	"github.com/hanksha/court-booking-backend/licensee"
	"github.com/hanksha/court-booking-backend/upstream"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	authenticator *au_mocks.MockAuthenticator
	access        *au_mocks.MockAccessControl
	actions       *au_mocks.MockActionLogger
	directory     *au_mocks.MockDirectory
	tokens        *auth.Tokens
	service       *auth.Service
	ctx           context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	authenticator := au_mocks.NewMockAuthenticator(ctrl)
	accessControl := au_mocks.NewMockAccessControl(ctrl)
	actions := au_mocks.NewMockActionLogger(ctrl)
	directory := au_mocks.NewMockDirectory(ctrl)
	tokens := auth.NewTokens("test-secret", time.Hour)

	return ctrl, testDeps{
		authenticator: authenticator,
		access:        accessControl,
		actions:       actions,
		directory:     directory,
		tokens:        tokens,
		service:       auth.NewService(authenticator, accessControl, actions, directory, tokens),
		ctx:           context.Background(),
	}
}

var loginDetails = actionlog.LoginDetails{Email: "ada@club.fr"}

func TestLogin(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		gomock.InOrder(
			testDeps.access.EXPECT().IsAuthorizedEmail(testDeps.ctx, "ada@club.fr").Return(true, nil),
			testDeps.authenticator.EXPECT().Authenticate(testDeps.ctx, "ada@club.fr", "secret").Return(&upstream.AuthResult{
				Token: "provider-token", UserID: "u1", Email: "ada@club.fr", FirstName: "Ada", LastName: "Martin",
			}, nil),
			testDeps.access.EXPECT().GetUserRights(testDeps.ctx, "u1").Return(access.Rights{access.RightAdmin}, nil),
			testDeps.actions.EXPECT().Log(testDeps.ctx, "u1", loginDetails, true),
		)

		session, err := testDeps.service.Login(testDeps.ctx, " Ada@Club.fr ", "secret")

		require.NoError(t, err)
		require.Equal(t, "u1", session.User.ID)
		require.Equal(t, "provider-token", session.Credential)
		require.True(t, session.User.Rights.IsAdmin())

		claims, err := testDeps.tokens.Parse(session.Token)
		require.NoError(t, err)
		require.Equal(t, "u1", claims.Subject)
		require.Equal(t, "provider-token", claims.Credential)
	})

	t.Run("email not on the allow-list", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.access.EXPECT().IsAuthorizedEmail(testDeps.ctx, "ada@club.fr").Return(false, nil).Times(1)
		testDeps.authenticator.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		testDeps.directory.EXPECT().ByEmail(testDeps.ctx, "ada@club.fr").Return(licensee.Licensee{UserID: "u1"}, true, nil).Times(1)
		testDeps.actions.EXPECT().Log(testDeps.ctx, "u1", loginDetails, false).Times(1)

		session, err := testDeps.service.Login(testDeps.ctx, "ada@club.fr", "secret")

		require.ErrorIs(t, err, auth.ErrEmailNotAuthorized)
		require.Nil(t, session)
	})

	t.Run("provider rejects the credentials", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.access.EXPECT().IsAuthorizedEmail(testDeps.ctx, "ada@club.fr").Return(true, nil).Times(1)
		testDeps.authenticator.EXPECT().Authenticate(testDeps.ctx, "ada@club.fr", "wrong").Return(nil, upstream.ErrUnauthorized).Times(1)
		testDeps.directory.EXPECT().ByEmail(testDeps.ctx, "ada@club.fr").Return(licensee.Licensee{}, false, nil).Times(1)
		testDeps.actions.EXPECT().Log(testDeps.ctx, "ada@club.fr", loginDetails, false).Times(1)

		_, err := testDeps.service.Login(testDeps.ctx, "ada@club.fr", "wrong")

		require.ErrorIs(t, err, upstream.ErrUnauthorized)
	})

	t.Run("directory down on failure", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.access.EXPECT().IsAuthorizedEmail(testDeps.ctx, "ada@club.fr").Return(false, nil).Times(1)
		testDeps.directory.EXPECT().ByEmail(testDeps.ctx, "ada@club.fr").Return(licensee.Licensee{}, false, errors.New("roster down")).Times(1)
		testDeps.actions.EXPECT().Log(testDeps.ctx, "ada@club.fr", loginDetails, false).Times(1)

		_, err := testDeps.service.Login(testDeps.ctx, "ada@club.fr", "secret")

		require.ErrorIs(t, err, auth.ErrEmailNotAuthorized)
	})

	t.Run("missing credentials", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.access.EXPECT().IsAuthorizedEmail(gomock.Any(), gomock.Any()).Times(0)
		testDeps.actions.EXPECT().Log(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.Login(testDeps.ctx, "  ", "secret")

		require.ErrorIs(t, err, auth.ErrMissingCredentials)
	})
}

func TestAuthenticate(t *testing.T) {

	t.Run("rights are read fresh", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.access.EXPECT().IsAuthorizedEmail(gomock.Any(), gomock.Any()).Return(true, nil).Times(1)
		testDeps.authenticator.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(&upstream.AuthResult{Token: "provider-token", UserID: "u1"}, nil).Times(1)
		testDeps.access.EXPECT().GetUserRights(gomock.Any(), "u1").Return(access.Rights{}, nil).Times(1)
		testDeps.actions.EXPECT().Log(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

		login, err := testDeps.service.Login(testDeps.ctx, "ada@club.fr", "secret")
		require.NoError(t, err)

		testDeps.access.EXPECT().GetUserRights(gomock.Any(), "u1").Return(access.Rights{access.RightPowerUser}, nil).Times(1)

		session, err := testDeps.service.Authenticate(testDeps.ctx, login.Token)

		require.NoError(t, err)
		require.True(t, session.User.Rights.IsPowerUser())
		require.Equal(t, "provider-token", session.Credential)
		require.Equal(t, "ada@club.fr", session.User.Email)
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.access.EXPECT().GetUserRights(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.Authenticate(testDeps.ctx, "bogus")

		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
