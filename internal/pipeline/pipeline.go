package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"tablemerge/internal/files"
	"tablemerge/internal/schema"
)

// Reader is the collaborator that parses one input file into rows of text
// cells, header row first.
type Reader func(path string) ([][]string, error)

// Writer is the collaborator that serializes one output artifact. It must
// flush before returning and report the path it wrote.
type Writer interface {
	Write(fileName string, header []string, rows [][]string) (string, error)
}

// FileRecord is one successfully read, non-empty input file
type FileRecord struct {
	Path   string
	Header schema.Header
	Rows   [][]string // data rows only, original ragged shape
}

// OutputTable is the consolidated table of one compatibility group
type OutputTable struct {
	Name    string
	Header  schema.Header
	Rows    [][]string
	Members []string // source paths in group order
}

// Summary reports what a run did
type Summary struct {
	FilesDiscovered  int
	FilesRead        int
	Groups           int
	ArtifactsCreated int
	RowsWritten      int
	OutputPaths      []string
}

// Pipeline wires the discovery, reader and writer collaborators around the
// schema grouping core.
type Pipeline struct {
	discovery *files.Discovery
	read      Reader
	writer    Writer
	logger    *slog.Logger
}

// New creates a pipeline
func New(discovery *files.Discovery, read Reader, writer Writer, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		discovery: discovery,
		read:      read,
		writer:    writer,
		logger:    logger,
	}
}

// Run executes one merging pass over searchPath: discover candidate files,
// read them, group compatible headers, consolidate each group and write one
// artifact per group.
//
// Unreadable and empty files are logged and skipped. A failure to write any
// artifact aborts the run. Zero discovered files is not an error.
func (p *Pipeline) Run(ctx context.Context, searchPath string) (*Summary, error) {
	p.logger.InfoContext(ctx, "searching for files", slog.String("path", searchPath))

	candidates, err := p.discovery.Find(searchPath)
	if err != nil {
		return nil, err
	}
	p.logger.InfoContext(ctx, "found files to process", slog.Int("count", len(candidates)))

	summary := &Summary{FilesDiscovered: len(candidates)}
	if len(candidates) == 0 {
		p.logger.WarnContext(ctx, "no tabular files found", slog.String("path", searchPath))
		return summary, nil
	}

	records := p.readAll(ctx, candidates)
	summary.FilesRead = len(records)

	headers := make([]schema.Header, len(records))
	for i, rec := range records {
		headers[i] = rec.Header
	}
	groups := schema.GroupHeaders(headers)
	summary.Groups = len(groups)
	p.logger.InfoContext(ctx, "grouped files by header compatibility", slog.Int("groups", len(groups)))

	tables := make([]OutputTable, len(groups))
	for g, group := range groups {
		tables[g] = p.consolidate(ctx, records, group)
	}

	paths, err := p.writeAll(ctx, tables)
	if err != nil {
		return nil, err
	}

	summary.OutputPaths = paths
	summary.ArtifactsCreated = len(paths)
	for _, table := range tables {
		summary.RowsWritten += len(table.Rows)
	}

	p.logger.InfoContext(ctx, "processing complete",
		slog.Int("artifacts_created", summary.ArtifactsCreated),
		slog.Int("rows_written", summary.RowsWritten))

	return summary, nil
}

// readAll reads every candidate, excluding files that fail to parse or yield
// no rows at all. Exclusions are warnings, never errors.
func (p *Pipeline) readAll(ctx context.Context, candidates []files.FileInfo) []FileRecord {
	records := make([]FileRecord, 0, len(candidates))

	for _, candidate := range candidates {
		p.logger.InfoContext(ctx, "reading file", slog.String("path", candidate.Path))

		rows, err := p.read(candidate.Path)
		if err != nil {
			p.logger.WarnContext(ctx, "failed to read file, skipping",
				slog.String("path", candidate.Path),
				slog.String("error", err.Error()))
			continue
		}
		if len(rows) == 0 {
			p.logger.WarnContext(ctx, "file is empty, skipping", slog.String("path", candidate.Path))
			continue
		}

		records = append(records, FileRecord{
			Path:   candidate.Path,
			Header: schema.Header(rows[0]),
			Rows:   rows[1:],
		})
	}

	return records
}

// consolidate merges one group's headers and realigns every member's rows
// into the unified layout, concatenated in member order.
func (p *Pipeline) consolidate(ctx context.Context, records []FileRecord, group []int) OutputTable {
	memberHeaders := make([]schema.Header, len(group))
	for i, idx := range group {
		memberHeaders[i] = records[idx].Header
	}
	merged := schema.MergeHeaders(memberHeaders)

	table := OutputTable{
		Name:   schema.OutputName(merged, len(group)),
		Header: merged,
	}

	p.logger.InfoContext(ctx, "processing group",
		slog.String("merged_header", strings.Join(merged, ", ")),
		slog.Int("files", len(group)))

	for _, idx := range group {
		rec := records[idx]
		p.logger.InfoContext(ctx, "including file",
			slog.String("path", rec.Path),
			slog.String("header", strings.Join(rec.Header, ", ")))

		table.Rows = append(table.Rows, schema.RemapRows(rec.Header, merged, rec.Rows)...)
		table.Members = append(table.Members, rec.Path)
	}

	return table
}

// writeAll writes one artifact per table. Groups are independent, so the
// writes run concurrently; the first failure cancels the rest and aborts the
// run. Returned paths are in group order.
func (p *Pipeline) writeAll(ctx context.Context, tables []OutputTable) ([]string, error) {
	paths := make([]string, len(tables))

	eg, ctx := errgroup.WithContext(ctx)
	for g, table := range tables {
		g, table := g, table
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			path, err := p.writer.Write(table.Name, table.Header, table.Rows)
			if err != nil {
				return err
			}
			paths[g] = path

			p.logger.InfoContext(ctx, "created output artifact",
				slog.String("path", path),
				slog.Int("files", len(table.Members)),
				slog.Int("data_rows", len(table.Rows)))
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
