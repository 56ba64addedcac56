// Package store connects to the session database and manages the persistence
// of time-tracking sessions
package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"io/fs"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/Tsuyoshi84/time-tracker/internal/models"
	"github.com/Tsuyoshi84/time-tracker/internal/timeutil"
)

const (
	sessionBucket = "sessions"
	dateBucket    = "date_index"
	activeBucket  = "active_index"
	metaBucket    = "meta"
)

const dateLen = len(timeutil.DateFormat)

// Client is a BoltDB database client implementing DB.
type Client struct {
	*bolt.DB
}

// itob encodes a session id as a big-endian key so that ids sort
// numerically under a cursor.
func itob(id uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, id)

	return b
}

// dateKey builds a date index key. The id suffix keeps keys unique while
// preserving the date as a sortable prefix.
func dateKey(date string, id uint64) []byte {
	return append([]byte(date+"/"), itob(id)...)
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		// Open with a timeout fails with ErrTimeout when another process
		// holds the file lock.
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrAlreadyOpen.Wrap(err)
		}

		return nil, ErrStoreUnavailable.Wrap(err)
	}

	return db, nil
}

// NewClient opens the session database and idempotently prepares its
// buckets. It is safe to call against an existing database file.
func NewClient(pathToDB string) (*Client, error) {
	db, err := openDB(pathToDB)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{sessionBucket, dateBucket, activeBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return migrate(tx)
	})
	if err != nil {
		return nil, ErrStoreUnavailable.Wrap(err)
	}

	return &Client{db}, nil
}

// SaveSession assigns an identity and bookkeeping timestamps to the session
// and persists it together with its index entries.
func (c *Client) SaveSession(sess *models.Session) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		id, err := b.NextSequence()
		if err != nil {
			return err
		}

		now := time.Now()

		sess.ID = id
		sess.CreatedAt = now
		sess.UpdatedAt = now
		// The date partition is always derived from the start time.
		sess.Date = timeutil.ToDateString(sess.StartTime)

		if err := putSession(tx, sess); err != nil {
			return err
		}

		if err := tx.Bucket([]byte(dateBucket)).Put(dateKey(sess.Date, id), itob(id)); err != nil {
			return err
		}

		if sess.Active {
			return tx.Bucket([]byte(activeBucket)).Put(itob(id), nil)
		}

		return nil
	})
}

// UpdateSession applies fn to the stored session in a single read-merge-write
// transaction, refreshing UpdatedAt and the index entries. The duration field
// is never recomputed here; callers supply it explicitly when ending a
// session.
func (c *Client) UpdateSession(
	id uint64,
	fn func(*models.Session),
) (*models.Session, error) {
	var updated models.Session

	err := c.Update(func(tx *bolt.Tx) error {
		sess, err := getSession(tx, id)
		if err != nil {
			return err
		}

		prevDate := sess.Date
		prevActive := sess.Active

		fn(sess)

		sess.ID = id
		sess.Date = timeutil.ToDateString(sess.StartTime)
		sess.UpdatedAt = time.Now()

		if err := putSession(tx, sess); err != nil {
			return err
		}

		if sess.Date != prevDate {
			if err := tx.Bucket([]byte(dateBucket)).Delete(dateKey(prevDate, id)); err != nil {
				return err
			}

			if err := tx.Bucket([]byte(dateBucket)).Put(dateKey(sess.Date, id), itob(id)); err != nil {
				return err
			}
		}

		if sess.Active != prevActive {
			active := tx.Bucket([]byte(activeBucket))
			if sess.Active {
				if err := active.Put(itob(id), nil); err != nil {
					return err
				}
			} else {
				if err := active.Delete(itob(id)); err != nil {
					return err
				}
			}
		}

		updated = *sess

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteSession removes a session and its index entries. A missing id is
// not an error.
func (c *Client) DeleteSession(id uint64) error {
	return c.Update(func(tx *bolt.Tx) error {
		sess, err := getSession(tx, id)
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}

		if err != nil {
			return err
		}

		if err := tx.Bucket([]byte(sessionBucket)).Delete(itob(id)); err != nil {
			return err
		}

		if err := tx.Bucket([]byte(dateBucket)).Delete(dateKey(sess.Date, id)); err != nil {
			return err
		}

		return tx.Bucket([]byte(activeBucket)).Delete(itob(id))
	})
}

// GetSessionsByDate returns all sessions recorded on the given date, ordered
// by start time ascending.
func (c *Client) GetSessionsByDate(date string) ([]models.Session, error) {
	return c.GetSessionsInRange(date, date)
}

// GetActiveSession returns the single running session, or nil when idle.
func (c *Client) GetActiveSession() (*models.Session, error) {
	var sess *models.Session

	err := c.View(func(tx *bolt.Tx) error {
		k, _ := tx.Bucket([]byte(activeBucket)).Cursor().First()
		if k == nil {
			return nil
		}

		s, err := getSession(tx, binary.BigEndian.Uint64(k))
		if err != nil {
			return err
		}

		sess = s

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sess, nil
}

// GetSessionsInRange returns all sessions whose date falls within the
// inclusive [startDate, endDate] range, ordered by start time ascending.
func (c *Client) GetSessionsInRange(
	startDate, endDate string,
) ([]models.Session, error) {
	var sessions []models.Session

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(dateBucket)).Cursor()
		min := []byte(startDate)

		for k, v := cur.Seek(min); k != nil; k, v = cur.Next() {
			if len(k) < dateLen || string(k[:dateLen]) > endDate {
				break
			}

			sess, err := getSession(tx, binary.BigEndian.Uint64(v))
			if err != nil {
				return err
			}

			sessions = append(sessions, *sess)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})

	return sessions, nil
}

// ClearSessions wipes all stored sessions and their indexes.
func (c *Client) ClearSessions() error {
	return c.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{sessionBucket, dateBucket, activeBucket} {
			if err := tx.DeleteBucket([]byte(name)); err != nil {
				return err
			}

			if _, err := tx.CreateBucket([]byte(name)); err != nil {
				return err
			}
		}

		return nil
	})
}

func getSession(tx *bolt.Tx, id uint64) (*models.Session, error) {
	raw := tx.Bucket([]byte(sessionBucket)).Get(itob(id))
	if len(raw) == 0 {
		return nil, ErrSessionNotFound.Fmt(id)
	}

	var sess models.Session

	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}

	return &sess, nil
}

func putSession(tx *bolt.Tx, sess *models.Session) error {
	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return tx.Bucket([]byte(sessionBucket)).Put(itob(sess.ID), value)
}
