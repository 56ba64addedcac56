package store

import (
	"encoding/json"
	"strconv"

	bolt "go.etcd.io/bbolt"

	"github.com/Tsuyoshi84/time-tracker/internal/models"
	"github.com/Tsuyoshi84/time-tracker/internal/timeutil"
)

const schemaVersion = 1

var schemaKey = []byte("schema_version")

// migrate brings an existing database file up to the current schema. The
// only migration so far rebuilds the date and active indexes from the
// sessions bucket, which also repairs indexes left behind by a crash
// between writes.
func migrate(tx *bolt.Tx) error {
	meta := tx.Bucket([]byte(metaBucket))

	if v, err := strconv.Atoi(string(meta.Get(schemaKey))); err == nil &&
		v >= schemaVersion {
		return nil
	}

	if err := rebuildIndexes(tx); err != nil {
		return err
	}

	return meta.Put(schemaKey, []byte(strconv.Itoa(schemaVersion)))
}

func rebuildIndexes(tx *bolt.Tx) error {
	for _, name := range []string{dateBucket, activeBucket} {
		if err := tx.DeleteBucket([]byte(name)); err != nil {
			return err
		}

		if _, err := tx.CreateBucket([]byte(name)); err != nil {
			return err
		}
	}

	var sessions []models.Session

	err := tx.Bucket([]byte(sessionBucket)).ForEach(func(_, v []byte) error {
		var sess models.Session

		if err := json.Unmarshal(v, &sess); err != nil {
			return err
		}

		sessions = append(sessions, sess)

		return nil
	})
	if err != nil {
		return err
	}

	dates := tx.Bucket([]byte(dateBucket))
	active := tx.Bucket([]byte(activeBucket))

	for i := range sessions {
		sess := &sessions[i]

		// Older files may predate the derived date field.
		if sess.Date == "" {
			sess.Date = timeutil.ToDateString(sess.StartTime)

			if err := putSession(tx, sess); err != nil {
				return err
			}
		}

		if err := dates.Put(dateKey(sess.Date, sess.ID), itob(sess.ID)); err != nil {
			return err
		}

		if sess.Active {
			if err := active.Put(itob(sess.ID), nil); err != nil {
				return err
			}
		}
	}

	return nil
}
