package sessions

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gomodule/redigo/redis"

	. "learnapp/pkg/common"
	"learnapp/pkg/user"
)

const (
	redisNS = "learnappSessions"

	tokenAccess  = "access"
	tokenRefresh = "refresh"
)

type (
	sessionKey string

	// Pool hands out Redis connections; *redis.Pool satisfies it.
	Pool interface {
		Get() redis.Conn
	}

	SessionManager struct {
		secret     []byte
		pool       Pool
		accessTTL  time.Duration
		sessionTTL time.Duration
	}

	jwtClaims struct {
		User user.User `json:"user"`
		Type string    `json:"typ"`
		jwt.StandardClaims
	}
)

const SessionKey sessionKey = "authenticatedUser"

var ErrNoAuth = errors.New("sessions: no session found")

func NewSessionManager(secret string, pool Pool, accessTTL, sessionTTL time.Duration) *SessionManager {
	return &SessionManager{
		secret:     []byte(secret),
		pool:       pool,
		accessTTL:  accessTTL,
		sessionTTL: sessionTTL,
	}
}

// NewPool builds the redigo pool used by the session manager.
func NewPool(addr string) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     8,
		IdleTimeout: 4 * time.Minute,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(addr,
				redis.DialConnectTimeout(3*time.Second),
				redis.DialReadTimeout(3*time.Second),
				redis.DialWriteTimeout(3*time.Second))
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

func userKey(userId int64) string {
	return fmt.Sprintf("%s:%d", redisNS, userId)
}

// Returns logged in user if the access token from the header is valid
// and its session is alive.
func (sm *SessionManager) UserFromToken(authHeader string) (*user.User, error) {
	if authHeader == "" {
		return nil, errors.New("sessions: auth header not found")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := sm.parse(tokenString, tokenAccess)
	if err != nil {
		return nil, err
	}

	_, redisErr := sm.CheckRedis(claims.User.Id, claims.Id)
	if redisErr != nil {
		return nil, fmt.Errorf("sessions/manager: Redis session is not valid: %w", redisErr)
	}

	return &claims.User, nil
}

// Refresh issues a new access token for the session of a valid refresh token.
func (sm *SessionManager) Refresh(refreshToken string) (string, error) {
	claims, err := sm.parse(refreshToken, tokenRefresh)
	if err != nil {
		return ``, err
	}

	if _, err := sm.CheckRedis(claims.User.Id, claims.Id); err != nil {
		return ``, fmt.Errorf("sessions/manager: Redis session is not valid: %w", err)
	}

	return sm.sign(&claims.User, claims.Id, tokenAccess, time.Now().Add(sm.accessTTL))
}

func (sm *SessionManager) parse(tokenString, typ string) (*jwtClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("sessions: unexpected signing method %v", token.Header["alg"])
			}
			return sm.secret, nil
		})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok {
		return nil, errors.New("sessions: can't cast token to claim")
	}
	if !token.Valid {
		return nil, errors.New("sessions: token is not valid")
	}
	if claims.Type != typ {
		return nil, fmt.Errorf("sessions: expected %s token, got %q", typ, claims.Type)
	}
	return claims, nil
}

// Goes through all user sessions and removes expired ones.
func (sm *SessionManager) CleanupUserSessions(userId int64) error {
	conn := sm.pool.Get()
	defer conn.Close()

	sessions, err := redis.StringMap(conn.Do("HGETALL", userKey(userId)))
	if err != nil {
		log.Println("sessions/manager: can't HGETALL user sessions from Redis:", err)
		return err
	}

	nowTs := time.Now().Unix()
	for sessId, exp := range sessions {
		expTs, _ := strconv.ParseInt(exp, 10, 64)
		if nowTs > expTs {
			if _, err := conn.Do("HDEL", userKey(userId), sessId); err != nil {
				return fmt.Errorf("sessions/manager: failed HDEL: %w", err)
			}
			log.Printf("sessions/manager: session %s removed (expired at %s)\n", sessId, exp)
		}
	}

	return nil
}

// DropUserSessions logs the user out everywhere.
func (sm *SessionManager) DropUserSessions(userId int64) error {
	conn := sm.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("DEL", userKey(userId)); err != nil {
		return fmt.Errorf("sessions/manager: failed DEL from Redis: %w", err)
	}
	return nil
}

func (sm *SessionManager) CheckRedis(userId int64, sessionId string) (bool, error) {
	conn := sm.pool.Get()
	defer conn.Close()

	expirationData, err := redis.Bytes(conn.Do("HGET", userKey(userId), sessionId))
	if err != nil {
		return false, err
	}

	// Check user session for expiration
	expiredTs, _ := strconv.ParseInt(string(expirationData), 10, 64)
	nowTs := time.Now().Unix()
	if nowTs > expiredTs {
		return false, errors.New("session has been expired")
	}

	// Prolongate session expiration time if it expires in less than 24 hours
	// because we don't want to kick off the active user.
	if expiredTs-nowTs < int64((24 * time.Hour).Seconds()) {
		newExpDate := time.Now().Add(sm.sessionTTL).Unix()
		err := sm.AddToRedis(userId, sessionId, newExpDate)
		if err != nil {
			return false, err
		}
	}

	return true, nil
}

func (sm *SessionManager) AddToRedis(userId int64, sessionId string, exp int64) error {
	conn := sm.pool.Get()
	defer conn.Close()

	_, err := conn.Do("HSET", userKey(userId), sessionId, exp)
	if err != nil {
		return fmt.Errorf("sessions/manager: failed HSET to Redis: %w", err)
	}
	return nil
}

// CreateTokens opens a new session and returns its access and refresh tokens.
func (sm *SessionManager) CreateTokens(u *user.User) (string, string, error) {
	sessionID := RandStringRunes(10)
	sessionExp := time.Now().Add(sm.sessionTTL)

	access, err := sm.sign(u, sessionID, tokenAccess, time.Now().Add(sm.accessTTL))
	if err != nil {
		return ``, ``, err
	}
	refresh, err := sm.sign(u, sessionID, tokenRefresh, sessionExp)
	if err != nil {
		return ``, ``, err
	}

	redisErr := sm.AddToRedis(u.Id, sessionID, sessionExp.Unix())
	if redisErr != nil {
		log.Println("sessions/manager: failed add to redis", redisErr)
		return ``, ``, redisErr
	}

	return access, refresh, nil
}

func (sm *SessionManager) sign(u *user.User, sessionID, typ string, exp time.Time) (string, error) {
	data := jwtClaims{
		User: user.User{Id: u.Id, Email: u.Email, Username: u.Username},
		Type: typ,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: exp.Unix(),
			IssuedAt:  time.Now().Unix(),
			Id:        sessionID,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, data).SignedString(sm.secret)
}

func GetAuthUser(ctx context.Context) (*user.User, error) {
	user, ok := ctx.Value(SessionKey).(*user.User)
	if !ok || user == nil {
		return nil, ErrNoAuth
	}
	return user, nil
}

// WithAuthUser stores the authenticated user in the context.
func WithAuthUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, SessionKey, u)
}
