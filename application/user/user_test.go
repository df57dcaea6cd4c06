package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	appuser "github.com/muhammadheryan/storefront/application/user"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	appusermocks "github.com/muhammadheryan/storefront/mocks/application/user"
	redismocks "github.com/muhammadheryan/storefront/mocks/repository/redis"
	usermocks "github.com/muhammadheryan/storefront/mocks/repository/user"
	"github.com/muhammadheryan/storefront/model"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const secret = "test-secret-key-for-jwt-signing"

var cfg = &config.Config{
	Auth: config.AuthConfig{
		JWTSecret:      secret,
		JWTExpiration:  time.Hour,
		SessionExpTime: 2 * time.Hour,
	},
}

type deps struct {
	userRepo   *usermocks.UserRepository
	redisRepo  *redismocks.RedisRepository
	cartMerger *appusermocks.CartMerger
}

func newDeps(t *testing.T) deps {
	return deps{
		userRepo:   usermocks.NewUserRepository(t),
		redisRepo:  redismocks.NewRedisRepository(t),
		cartMerger: appusermocks.NewCartMerger(t),
	}
}

func (d deps) app() appuser.UserApp {
	return appuser.NewUserApp(cfg, d.userRepo, d.redisRepo, d.cartMerger)
}

func ana(t *testing.T) *model.UserEntity {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.UserEntity{ID: 1, Name: "Ana", Email: "ana@example.com", Phone: "081234567890", PasswordHash: string(hash)}
}

func TestUserApp_Register(t *testing.T) {
	req := func() *model.RegisterRequest {
		return &model.RegisterRequest{Name: "Ana", Email: " Ana@Example.com ", Phone: "081234567890", Password: "password123"}
	}
	byEmail := &model.UserFilter{Email: "ana@example.com"}
	byPhone := &model.UserFilter{Phone: "081234567890"}

	tests := []struct {
		name     string
		mockCall func(d deps)
		want     *model.RegisterResponse
		errCode  constant.ErrorType
	}{
		{
			name: "success: email is stored normalized and password hashed",
			mockCall: func(d deps) {
				d.userRepo.On("Get", mock.Anything, byEmail).Return(nil, nil).Once()
				d.userRepo.On("Get", mock.Anything, byPhone).Return(nil, nil).Once()
				d.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.UserEntity) bool {
					return u.Email == "ana@example.com" &&
						bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil
				})).Return(&model.UserEntity{ID: 1, Name: "Ana", Email: "ana@example.com"}, nil).Once()
			},
			want: &model.RegisterResponse{Name: "Ana", Email: "ana@example.com"},
		},
		{
			name: "error: email taken",
			mockCall: func(d deps) {
				d.userRepo.On("Get", mock.Anything, byEmail).Return(&model.UserEntity{ID: 9}, nil).Once()
			},
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: phone taken",
			mockCall: func(d deps) {
				d.userRepo.On("Get", mock.Anything, byEmail).Return(nil, nil).Once()
				d.userRepo.On("Get", mock.Anything, byPhone).Return(&model.UserEntity{ID: 9}, nil).Once()
			},
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: lookup failed",
			mockCall: func(d deps) {
				d.userRepo.On("Get", mock.Anything, byEmail).Return(nil, errors.New("db down")).Once()
			},
			errCode: constant.ErrInternal,
		},
		{
			name: "error: insert failed",
			mockCall: func(d deps) {
				d.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Twice()
				d.userRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("duplicate")).Once()
			},
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			tt.mockCall(d)

			got, err := d.app().Register(context.Background(), req())
			if tt.want == nil {
				assert.True(t, cerr.Is(err, tt.errCode), "err = %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	user := ana(t)

	tests := []struct {
		name       string
		req        *model.LoginRequest
		guestToken string
		mockCall   func(d deps)
		wantMerged bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: by email",
			req:  &model.LoginRequest{Identifier: "ANA@example.com", Password: "password123"},
			mockCall: func(d deps) {
				d.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ana@example.com"}).Return(user, nil).Once()
				d.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), 2*time.Hour).Return(nil).Once()
			},
		},
		{
			name: "success: by phone",
			req:  &model.LoginRequest{Identifier: "081234567890", Password: "password123"},
			mockCall: func(d deps) {
				d.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "081234567890"}).Return(user, nil).Once()
				d.redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(1), mock.Anything).Return(nil).Once()
			},
		},
		{
			name:       "success: guest cart merged",
			req:        &model.LoginRequest{Identifier: "ana@example.com", Password: "password123"},
			guestToken: "guest-tok",
			mockCall: func(d deps) {
				d.userRepo.On("Get", mock.Anything, mock.Anything).Return(user, nil).Once()
				d.redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(1), mock.Anything).Return(nil).Once()
				d.cartMerger.On("MergeGuestCart", mock.Anything, uint64(1), "guest-tok").Return(nil).Once()
			},
			wantMerged: true,
		},
		{
			name:       "success: failed merge does not block login",
			req:        &model.LoginRequest{Identifier: "ana@example.com", Password: "password123"},
			guestToken: "guest-tok",
			mockCall: func(d deps) {
				d.userRepo.On("Get", mock.Anything, mock.Anything).Return(user, nil).Once()
				d.redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(1), mock.Anything).Return(nil).Once()
				d.cartMerger.On("MergeGuestCart", mock.Anything, uint64(1), "guest-tok").
					Return(cerr.SetCustomError(constant.ErrConcurrentModification)).Once()
			},
		},
		{
			name: "error: unknown user",
			req:  &model.LoginRequest{Identifier: "nobody@example.com", Password: "password123"},
			mockCall: func(d deps) {
				d.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: wrong password",
			req:  &model.LoginRequest{Identifier: "ana@example.com", Password: "nope"},
			mockCall: func(d deps) {
				d.userRepo.On("Get", mock.Anything, mock.Anything).Return(user, nil).Once()
			},
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: session store down",
			req:  &model.LoginRequest{Identifier: "ana@example.com", Password: "password123"},
			mockCall: func(d deps) {
				d.userRepo.On("Get", mock.Anything, mock.Anything).Return(user, nil).Once()
				d.redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(1), mock.Anything).Return(errors.New("redis down")).Once()
			},
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			tt.mockCall(d)

			got, err := d.app().Login(context.Background(), tt.req, tt.guestToken)
			if tt.errCode != constant.Successful {
				assert.True(t, cerr.Is(err, tt.errCode), "err = %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Ana", got.Name)
			assert.NotEmpty(t, got.Token)
			assert.Equal(t, tt.wantMerged, got.CartMerged)
		})
	}
}

// login signs Ana in and returns the token and the session id it was stored under.
func login(t *testing.T, d deps) (string, string) {
	t.Helper()
	var jti string
	d.userRepo.On("Get", mock.Anything, mock.Anything).Return(ana(t), nil).Once()
	d.redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(1), mock.Anything).
		Run(func(args mock.Arguments) { jti = args.String(1) }).
		Return(nil).Once()

	res, err := d.app().Login(context.Background(), &model.LoginRequest{Identifier: "ana@example.com", Password: "password123"}, "")
	require.NoError(t, err)
	require.NotEmpty(t, jti)
	return res.Token, jti
}

func TestUserApp_ValidateToken(t *testing.T) {
	tests := []struct {
		name     string
		token    func(token string) string
		mockCall func(d deps, jti string)
		wantID   uint64
		wantErr  bool
	}{
		{
			name:  "success: live session",
			token: func(tok string) string { return tok },
			mockCall: func(d deps, jti string) {
				d.redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(1), nil).Once()
			},
			wantID: 1,
		},
		{
			name:  "error: logged out",
			token: func(tok string) string { return tok },
			mockCall: func(d deps, jti string) {
				d.redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(0), nil).Once()
			},
			wantErr: true,
		},
		{
			name:  "error: session of another user",
			token: func(tok string) string { return tok },
			mockCall: func(d deps, jti string) {
				d.redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(2), nil).Once()
			},
			wantErr: true,
		},
		{
			name:  "error: session store down",
			token: func(tok string) string { return tok },
			mockCall: func(d deps, jti string) {
				d.redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(0), errors.New("redis down")).Once()
			},
			wantErr: true,
		},
		{
			name:    "error: garbage",
			token:   func(string) string { return "not-a-jwt" },
			wantErr: true,
		},
		{
			name: "error: signed with another key",
			token: func(string) string {
				forged, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
					Subject:   "1",
					ID:        "jti",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				}).SignedString([]byte("other"))
				return forged
			},
			wantErr: true,
		},
		{
			name: "error: expired",
			token: func(string) string {
				old, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
					Subject:   "1",
					ID:        "jti",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				}).SignedString([]byte(secret))
				return old
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			token, jti := login(t, d)
			if tt.mockCall != nil {
				tt.mockCall(d, jti)
			}

			id, err := d.app().ValidateToken(context.Background(), tt.token(token))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestUserApp_Logout(t *testing.T) {
	t.Run("success: session dropped", func(t *testing.T) {
		d := newDeps(t)
		token, jti := login(t, d)
		d.redisRepo.On("DeleteSession", mock.Anything, jti).Return(nil).Once()

		assert.NoError(t, d.app().Logout(context.Background(), token))
	})

	t.Run("error: store down", func(t *testing.T) {
		d := newDeps(t)
		token, jti := login(t, d)
		d.redisRepo.On("DeleteSession", mock.Anything, jti).Return(errors.New("redis down")).Once()

		err := d.app().Logout(context.Background(), token)
		assert.True(t, cerr.Is(err, constant.ErrInternal), "err = %v", err)
	})

	t.Run("error: bad token", func(t *testing.T) {
		d := newDeps(t)
		err := d.app().Logout(context.Background(), "not-a-jwt")
		assert.True(t, cerr.Is(err, constant.ErrUnauthorize), "err = %v", err)
	})
}
