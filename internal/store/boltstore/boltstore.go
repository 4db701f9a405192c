// Package boltstore provides a BBolt-backed call session store for single-node deployments.
package boltstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ivr-server/internal/store"

	"go.etcd.io/bbolt"
)

var sessionsBucket = []byte("call_sessions")

var _ store.Storer = (*Store)(nil)

// Store implements the session operations of store.Store on top of a BBolt file.
type Store struct {
	db *bbolt.DB
}

// New returns a Store backed by the given BBolt database.
func New(db *bbolt.DB) (*Store, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionsBucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("creating sessions bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Open opens a BBolt database at path and returns a Store.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bbolt db: %w", err)
	}
	s, err := New(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying BBolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

func getSession(b *bbolt.Bucket, phoneNumber string) (store.Session, error) {
	data := b.Get([]byte(phoneNumber))
	if data == nil {
		return store.Session{}, store.ErrNotFound
	}
	var session store.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return store.Session{}, fmt.Errorf("decoding session %s: %w", phoneNumber, err)
	}
	return session, nil
}

func putSession(b *bbolt.Bucket, session store.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return b.Put([]byte(session.PhoneNumber), data)
}

// update runs fn against the stored session and writes it back in one transaction.
func (s *Store) update(ctx context.Context, phoneNumber string, fn func(*store.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(sessionsBucket)
		session, err := getSession(b, phoneNumber)
		if err != nil {
			return err
		}
		if err := fn(&session); err != nil {
			return err
		}
		return putSession(b, session)
	})
}

func (s *Store) GetSession(ctx context.Context, phoneNumber string) (store.Session, error) {
	if err := ctx.Err(); err != nil {
		return store.Session{}, err
	}
	var session store.Session
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		session, err = getSession(tx.Bucket(sessionsBucket), phoneNumber)
		return err
	})
	return session, err
}

func (s *Store) CreateSession(ctx context.Context, params store.CreateSessionParams) (store.Session, error) {
	if err := ctx.Err(); err != nil {
		return store.Session{}, err
	}
	session := store.Session{
		PhoneNumber: params.PhoneNumber,
		Info: store.SessionInfo{
			UserID:    params.UserID,
			Verifying: params.Verifying,
			Enrolling: params.Enrolling,
		},
	}
	if !params.AuthTime.IsZero() {
		session.Info.AuthTime = store.FormatAuthTime(params.AuthTime)
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(sessionsBucket)
		if b.Get([]byte(params.PhoneNumber)) != nil {
			return store.ErrAlreadyExists
		}
		return putSession(b, session)
	})
	if err != nil {
		return store.Session{}, err
	}
	return session, nil
}

func (s *Store) SetNumEnrollments(ctx context.Context, phoneNumber string, expectedPrior, numEnrollments int) error {
	return s.update(ctx, phoneNumber, func(session *store.Session) error {
		if session.Info.NumEnrollments != expectedPrior {
			return store.ErrVersionConflict
		}
		session.Info.NumEnrollments = numEnrollments
		return nil
	})
}

func (s *Store) SetSuccessfulAuthentication(ctx context.Context, phoneNumber string, authTime time.Time) error {
	return s.update(ctx, phoneNumber, func(session *store.Session) error {
		session.Info.Verified = true
		session.Info.AuthTime = store.FormatAuthTime(authTime)
		return nil
	})
}

func (s *Store) ClearFlowFlags(ctx context.Context, phoneNumber string) error {
	return s.SetFlowFlags(ctx, phoneNumber, false, false)
}

func (s *Store) SetFlowFlags(ctx context.Context, phoneNumber string, verifying, enrolling bool) error {
	return s.update(ctx, phoneNumber, func(session *store.Session) error {
		session.Info.Verifying = verifying
		session.Info.Enrolling = enrolling
		return nil
	})
}

func (s *Store) ClearVerified(ctx context.Context, phoneNumber string) error {
	return s.update(ctx, phoneNumber, func(session *store.Session) error {
		session.Info.Verified = false
		return nil
	})
}

func (s *Store) RequireReverification(ctx context.Context, phoneNumber string) error {
	return s.update(ctx, phoneNumber, func(session *store.Session) error {
		session.Info.Verified = false
		session.Info.Verifying = true
		return nil
	})
}

func (s *Store) ResetSession(ctx context.Context, phoneNumber string) error {
	return s.update(ctx, phoneNumber, func(session *store.Session) error {
		session.Info.Verifying = false
		session.Info.Enrolling = false
		session.Info.NumEnrollments = 0
		session.Info.Verified = false
		return nil
	})
}
