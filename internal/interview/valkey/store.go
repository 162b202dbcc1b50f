package interviewvalkey

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/valkey-io/valkey-go"

	"github.com/openkcm/interview-manager/internal/serviceerr"
)

var errVersionMismatch = errors.New("stored version differs")

// setIfVersionScript replaces KEYS[1] with ARGV[2] when the "version" field
// of the stored JSON equals ARGV[1]. It returns -1 for a missing key, 0 on
// a version mismatch and 1 once written.
var setIfVersionScript = valkey.NewLuaScript(`
local current = redis.call('GET', KEYS[1])
if not current then
	return -1
end
local version = cjson.decode(current)['version'] or 0
if tonumber(version) ~= tonumber(ARGV[1]) then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'KEEPTTL')
return 1
`)

type store struct {
	valkey valkey.Client
	prefix string
}

func newStore(valkeyClient valkey.Client, prefix string) *store {
	prefix = strings.TrimSuffix(prefix, ":")
	return &store{
		valkey: valkeyClient,
		prefix: prefix,
	}
}

func (s *store) Get(ctx context.Context, objectType, objectID string, decodeInto any) error {
	return s.get(ctx, s.key(objectType, objectID), decodeInto)
}

// SetIfAbsent writes val under the object key. An existing key yields
// ErrConflict.
func (s *store) SetIfAbsent(ctx context.Context, objectType, id string, val any) error {
	key := s.key(objectType, id)
	bytes, err := s.encode(val)
	if err != nil {
		return fmt.Errorf("encoding data: %w", err)
	}

	cmd := s.valkey.B().Set().Key(key).Value(valkey.BinaryString(bytes)).Nx().Build()
	if err := s.valkey.Do(ctx, cmd).Error(); err != nil {
		if isNil(err) {
			return errors.Join(serviceerr.ErrConflict, err)
		}

		return fmt.Errorf("executing set command: %w", err)
	}

	return nil
}

// SetIfVersion atomically writes val when the stored object still carries
// the expected version.
func (s *store) SetIfVersion(ctx context.Context, objectType, id string, val any, expected int64) error {
	key := s.key(objectType, id)
	bytes, err := s.encode(val)
	if err != nil {
		return fmt.Errorf("encoding data: %w", err)
	}

	res, err := setIfVersionScript.Exec(ctx, s.valkey, []string{key}, []string{strconv.FormatInt(expected, 10), valkey.BinaryString(bytes)}).AsInt64()
	if err != nil {
		return fmt.Errorf("executing set script: %w", err)
	}

	switch res {
	case -1:
		return serviceerr.ErrNotFound
	case 0:
		return errVersionMismatch
	}

	return nil
}

func (s *store) Destroy(ctx context.Context, objectType, id string) error {
	key := s.key(objectType, id)
	if err := s.valkey.Do(ctx, s.valkey.B().Del().Key(key).Build()).Error(); err != nil {
		return fmt.Errorf("executing del command: %w", err)
	}

	return nil
}

func (s *store) get(ctx context.Context, key string, decodeInto any) error {
	bytes, err := s.valkey.Do(ctx, s.valkey.B().Get().Key(key).Build()).AsBytes()
	if err != nil {
		if isNil(err) {
			return errors.Join(serviceerr.ErrNotFound, err)
		}

		return fmt.Errorf("executing get command: %w", err)
	}

	if err := s.decode(bytes, decodeInto); err != nil {
		return fmt.Errorf("decoding session: %w", err)
	}

	return nil
}

func (s *store) key(objectType string, objectID string) string {
	return fmt.Sprintf("%s:%s:%s", s.prefix, objectType, objectID)
}

func (s *store) encode(v any) ([]byte, error) {
	bytes, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling json: %w", err)
	}

	return bytes, nil
}

func (s *store) decode(data []byte, into any) error {
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("unmarshaling json: %w", err)
	}

	return nil
}

func isNil(err error) bool {
	valkeyErr, ok := valkey.IsValkeyErr(err)
	return ok && valkeyErr.IsNil()
}

// getStoreObjects decodes every object of objectType matching the pattern.
// Keys deleted between the scan and the read are skipped.
func getStoreObjects[T any](ctx context.Context, s *store, objectType string, pattern string) ([]T, error) {
	match := s.key(objectType, pattern)
	var (
		objects []T
		cursor  uint64
	)
	for {
		scan, err := s.valkey.Do(ctx, s.valkey.B().Scan().Cursor(cursor).Match(match).Count(100).Build()).AsScanEntry()
		if err != nil {
			return nil, fmt.Errorf("executing scan command: %w", err)
		}

		cursor = scan.Cursor
		for _, key := range scan.Elements {
			var decoded T
			if err := s.get(ctx, key, &decoded); err != nil {
				if errors.Is(err, serviceerr.ErrNotFound) {
					continue
				}
				return nil, fmt.Errorf("getting an element: %w", err)
			}

			objects = append(objects, decoded)
		}

		if cursor == 0 {
			return objects, nil
		}
	}
}
