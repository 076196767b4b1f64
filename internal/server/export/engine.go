// Package export renders consolidated CSV artifacts from a snapshot of the
// submission store. Artifacts are written to a temporary file and renamed
// into place, so a reader never observes a partially written export.
package export

import (
	"context"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/logging"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/config"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/models"
)

// latestName is the fixed-name copy refreshed on every export.
const latestName = "latest.csv"

// timestampLayout names artifacts down to the second, matching the export
// cadence (one artifact per request).
const timestampLayout = "20060102_150405"

// Seams for the S3 client, replaceable in tests.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) error {
		_, err := c.PutObject(ctx, in)
		return err
	}
)

// Reader is the slice of the submission store the engine needs: one
// snapshot read.
type Reader interface {
	ReadAll(ctx context.Context) ([]models.ExportRow, error)
}

type Engine struct {
	store  Reader
	config *config.Config
	logger logging.Logger
}

func NewEngine(store Reader, cfg *config.Config, l logging.Logger) *Engine {
	return &Engine{
		store:  store,
		config: cfg,
		logger: l.With("module", "export"),
	}
}

// Export takes a snapshot of the submission store and publishes it as a
// timestamped CSV in the export directory, refreshing the latest-copy and
// optionally uploading to the configured S3 bucket. It returns the artifact
// reference. The snapshot read is the only point that touches the store, so
// concurrent inserts are never blocked longer than that.
func (e *Engine) Export(ctx context.Context) (string, error) {

	rows, err := e.store.ReadAll(ctx)
	if err != nil {
		return "", fmt.Errorf("export snapshot: %w", err)
	}

	if err := os.MkdirAll(e.config.ExportDir, 0o755); err != nil {
		return "", fmt.Errorf("export dir: %w", err)
	}

	name := fmt.Sprintf("college_data_export_%s.csv", time.Now().Format(timestampLayout))
	path := filepath.Join(e.config.ExportDir, name)

	if err := e.writeAtomic(path, rows); err != nil {
		return "", err
	}
	if err := e.writeAtomic(filepath.Join(e.config.ExportDir, latestName), rows); err != nil {
		return "", err
	}

	if e.config.S3BaseEndpoint != "" {
		key, err := e.upload(ctx, rows)
		if err != nil {
			return "", fmt.Errorf("publishing to s3: %w", err)
		}
		e.logger.Info(ctx, "export uploaded", "bucket", e.config.S3Bucket, "key", key)
	}

	e.logger.Info(ctx, "export completed", "artifact", path, "rows", len(rows))
	return path, nil
}

// writeAtomic renders rows to a temp file in the target directory and
// renames it over path. Rename within one directory is atomic on POSIX.
func (e *Engine) writeAtomic(path string, rows []models.ExportRow) error {

	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*")
	if err != nil {
		return fmt.Errorf("temp artifact: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := writeCSV(tmp, rows); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing artifact: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("publishing artifact: %w", err)
	}

	return nil
}

func writeCSV(out io.Writer, rows []models.ExportRow) error {
	w := csv.NewWriter(out)

	if err := w.Write([]string{"id", "department", "entry_type", "content", "created_at"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.ID, 10),
			row.Department,
			string(row.EntryType),
			row.Content,
			row.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

func renderCSVBytes(rows []models.ExportRow) (io.Reader, error) {
	var buf bytes.Buffer
	if err := writeCSV(&buf, rows); err != nil {
		return nil, err
	}
	return bytes.NewReader(buf.Bytes()), nil
}

func (e *Engine) upload(ctx context.Context, rows []models.ExportRow) (string, error) {

	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(e.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			e.config.S3RootUser,
			e.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return "", err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(e.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	body, err := renderCSVBytes(rows)
	if err != nil {
		return "", err
	}

	d := time.Now()
	key := fmt.Sprintf("exports/%d/%02d/%02d/%v.csv", d.Year(), d.Month(), d.Day(), uuid.New())

	if err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket: &e.config.S3Bucket,
		Key:    &key,
		Body:   body,
	}); err != nil {
		return "", err
	}

	return key, nil
}
