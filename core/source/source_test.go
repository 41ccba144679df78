package source_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"grip-attendance/core/source"
	"grip-attendance/core/storage"
	"grip-attendance/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    source.Location
		wantErr bool
	}{
		{"Local", "lists/reg.csv", source.Location{Path: "lists/reg.csv"}, false},
		{"Remote", "s3://events/2024/reg.csv", source.Location{Bucket: "events", Key: "2024/reg.csv"}, false},
		{"Empty", "", source.Location{}, true},
		{"NoKey", "s3://events", source.Location{}, true},
		{"EmptyKey", "s3://events/", source.Location{}, true},
		{"NoBucket", "s3:///reg.csv", source.Location{}, true},
		{"DirectoryKey", "s3://events/2024/", source.Location{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := source.Parse(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, source.ErrInvalidLocation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.raw, got.String())
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name string
		loc  source.Location
		want string
	}{
		{"Local", source.Location{Path: "reg_list.csv"}, "reg_list_attendance.csv"},
		{"LocalNested", source.Location{Path: filepath.Join("in", "reg.list.csv")}, filepath.Join("in", "reg.list_attendance.csv")},
		{"LocalNoExt", source.Location{Path: "reg"}, "reg_attendance.csv"},
		{"Remote", source.Location{Bucket: "events", Key: "2024/reg.csv"}, "reg_attendance.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, source.OutputPath(tt.loc, "_attendance.csv"))
		})
	}
}

func TestOpener_Local(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reg.csv")
	require.NoError(t, os.WriteFile(path, []byte("Email\n"), 0o644))

	opener := source.NewOpener(nil)
	ctx := context.Background()

	require.NoError(t, opener.Check(ctx, source.Location{Path: path}))

	rc, err := opener.Open(ctx, source.Location{Path: path})
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "Email\n", string(data))

	missing := source.Location{Path: filepath.Join(dir, "missing.csv")}
	assert.ErrorIs(t, opener.Check(ctx, missing), os.ErrNotExist)
	_, err = opener.Open(ctx, missing)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpener_Remote(t *testing.T) {
	loc := source.Location{Bucket: "events", Key: "reg.csv"}
	ctx := context.Background()

	t.Run("Open", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "events", "reg.csv", mock.Anything).Return(minio.ObjectInfo{Key: "reg.csv"}, nil)
		client.On("GetObject", mock.Anything, "events", "reg.csv", mock.Anything).Return(io.NopCloser(strings.NewReader("Email\n")), nil)

		calls := 0
		opener := source.NewOpener(func() (storage.Client, error) {
			calls++
			return client, nil
		})

		for i := 0; i < 2; i++ {
			rc, err := opener.Open(ctx, loc)
			require.NoError(t, err)
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			assert.Equal(t, "Email\n", string(data))
			require.NoError(t, rc.Close())
		}
		assert.Equal(t, 1, calls, "client is created once")
		client.AssertExpectations(t)
	})

	t.Run("MissingObject", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "events", "reg.csv", mock.Anything).Return(nil, errors.New("object not found"))

		opener := source.NewOpener(func() (storage.Client, error) { return client, nil })
		_, err := opener.Open(ctx, loc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "s3://events/reg.csv")
		client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CheckMissingBucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "events").Return(false, nil)

		opener := source.NewOpener(func() (storage.Client, error) { return client, nil })
		err := opener.Check(ctx, loc)
		assert.ErrorIs(t, err, source.ErrInvalidLocation)
	})

	t.Run("Check", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "events").Return(true, nil)
		client.On("StatObject", mock.Anything, "events", "reg.csv", mock.Anything).Return(minio.ObjectInfo{}, nil)

		opener := source.NewOpener(func() (storage.Client, error) { return client, nil })
		assert.NoError(t, opener.Check(ctx, loc))
		client.AssertExpectations(t)
	})

	t.Run("NotConfigured", func(t *testing.T) {
		_, err := source.NewOpener(nil).Open(ctx, loc)
		assert.ErrorIs(t, err, source.ErrInvalidLocation)
	})

	t.Run("FactoryError", func(t *testing.T) {
		opener := source.NewOpener(func() (storage.Client, error) { return nil, errors.New("no credentials") })
		_, err := opener.Open(ctx, loc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no credentials")
	})
}
