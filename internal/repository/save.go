package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/notakto/internal/apperror"
)

const saveKeyPrefix = "save:"

type SaveRepository interface {
	Save(ctx context.Context, name string, data []byte) error
	Load(ctx context.Context, name string) ([]byte, error)
	List(ctx context.Context) ([]string, error)
}

// ValidateSaveName accepts non-empty ASCII letters and digits only.
func ValidateSaveName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", apperror.ErrInvalidSaveName)
	}

	for _, ch := range name {
		isLetter := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		isDigit := ch >= '0' && ch <= '9'
		if !isLetter && !isDigit {
			return fmt.Errorf("%w: %q", apperror.ErrInvalidSaveName, name)
		}
	}

	return nil
}

type fileSaves struct {
	dir string
}

// NewFileSaveRepository keeps each save as a raw file named after the save inside dir.
func NewFileSaveRepository(dir string) SaveRepository {
	return &fileSaves{
		dir: dir,
	}
}

func (that *fileSaves) Save(_ context.Context, name string, data []byte) error {
	if err := ValidateSaveName(name); err != nil {
		return err
	}

	if err := os.MkdirAll(that.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}

	// write to a temporary file first so a failed write never leaves half a save behind
	tmp, err := os.CreateTemp(that.dir, "."+name+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write save: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close save: %w", err)
	}

	if err = os.Rename(tmp.Name(), filepath.Join(that.dir, name)); err != nil {
		return fmt.Errorf("failed to store save: %w", err)
	}

	return nil
}

func (that *fileSaves) Load(_ context.Context, name string) ([]byte, error) {
	if err := ValidateSaveName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(that.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSaveFileNotFound, name)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read save: %w", err)
	}

	return data, nil
}

func (that *fileSaves) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(that.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() && ValidateSaveName(entry.Name()) == nil {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

type redisSaves struct {
	client *redis.Client
}

// NewRedisSaveRepository keeps the same byte stream under save:<name>.
func NewRedisSaveRepository(client *redis.Client) SaveRepository {
	return &redisSaves{
		client: client,
	}
}

func (that *redisSaves) Save(ctx context.Context, name string, data []byte) error {
	if err := ValidateSaveName(name); err != nil {
		return err
	}

	if err := that.client.Set(ctx, saveKeyPrefix+name, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set save: %w", err)
	}

	return nil
}

func (that *redisSaves) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ValidateSaveName(name); err != nil {
		return nil, err
	}

	data, err := that.client.Get(ctx, saveKeyPrefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSaveFileNotFound, name)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get save: %w", err)
	}

	return data, nil
}

func (that *redisSaves) List(ctx context.Context) ([]string, error) {
	var names []string

	iter := that.client.Scan(ctx, 0, saveKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		names = append(names, iter.Val()[len(saveKeyPrefix):])
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan saves: %w", err)
	}

	sort.Strings(names)

	return names, nil
}
