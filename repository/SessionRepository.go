package repository

import (
	"context"
	"errors"
	"log"
	"time"
	"vrukshaAdmin/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Session is a staff login: the upstream bearer token plus the identity it
// was issued for. The two are written and removed together; a session is
// never observable with one and not the other.
type Session struct {
	Token    string
	Identity models.Identity
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session Session) (sessionId string, err error)
	GetSession(ctx context.Context, sessionId string) (session Session, exists bool, err error)
	DeleteSession(ctx context.Context, sessionId string) (err error)
	RefreshSession(ctx context.Context, sessionId string) (err error)
}

type SessionRepo struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionRepository(redis_conn *redis.Client, ttl time.Duration) (SessionRepository, error) {
	if redis_conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := redis_conn.Ping(context.Background()).Err()
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &SessionRepo{
		rdb: redis_conn,
		ttl: ttl,
	}, nil
}

func (s *SessionRepo) CreateSession(ctx context.Context, session Session) (sessionId string, err error) {
	if session.Token == "" || session.Identity.Id == "" {
		log.Printf("CreateSession: token and identity must both be set")
		err = models.ErrServerError
		return
	}
	sessionId = uuid.NewString()
	err = s.rdb.HSet(ctx, key(sessionId),
		"token", session.Token,
		"userId", session.Identity.Id,
		"email", session.Identity.Email,
		"name", session.Identity.Name,
		"role", session.Identity.Role,
	).Err()
	if err != nil {
		log.Printf("CreateSession: %v", err)
		err = models.ErrServerError
		return
	}
	s.rdb.Expire(ctx, key(sessionId), s.ttl)
	return
}

func (s *SessionRepo) GetSession(ctx context.Context, sessionId string) (session Session, exists bool, err error) {
	val, err := s.rdb.HGetAll(ctx, key(sessionId)).Result()
	if err != nil {
		log.Printf("GetSession: %v", err)
		err = models.ErrServerError
		return
	}
	if len(val) == 0 {
		return
	}
	session.Token = val["token"]
	session.Identity = models.Identity{
		Id:    val["userId"],
		Email: val["email"],
		Name:  val["name"],
		Role:  val["role"],
	}
	if session.Token == "" || session.Identity.Id == "" {
		log.Printf("GetSession: session %s is incomplete, dropping it", sessionId)
		s.rdb.Del(ctx, key(sessionId))
		session = Session{}
		return
	}
	exists = true
	return
}

// DeleteSession is idempotent: deleting a missing session is not an error,
// which lets concurrent 401 handlers race on the same wipe safely.
func (s *SessionRepo) DeleteSession(ctx context.Context, sessionId string) (err error) {
	err = s.rdb.Del(ctx, key(sessionId)).Err()
	if err != nil {
		log.Printf("DeleteSession: %v", err)
		err = models.ErrServerError
	}
	return
}

func (s *SessionRepo) RefreshSession(ctx context.Context, sessionId string) (err error) {
	err = s.rdb.Expire(ctx, key(sessionId), s.ttl).Err()
	if err != nil {
		log.Printf("RefreshSession: %v", err)
		err = models.ErrServerError
	}
	return
}

func key(sessionId string) string {
	return "adminSession:" + sessionId
}
