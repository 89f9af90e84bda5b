package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/iudanet/docsync/internal/client/files"
)

type fileView struct {
	ID     string
	Name   string
	Type   string
	Status string
	Size   any
}

func (c *Cli) runMkdir(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: docsync mkdir <name> [parent-id]", ErrUsage)
	}
	parent := ""
	if len(args) == 2 {
		parent = args[1]
	}

	doc, err := c.fileManager().NewFolder(ctx, args[0], parent)
	if err != nil {
		return err
	}
	c.io.Printf("✓ Folder %s created (id %s)\n", args[0], doc.ID)
	return nil
}

func (c *Cli) runLs(ctx context.Context, args []string) error {
	parent := ""
	if len(args) > 0 {
		parent = args[0]
	}

	docs, err := c.fileManager().List(ctx, parent)
	if err != nil {
		return err
	}

	views := make([]fileView, 0, len(docs))
	for _, d := range docs {
		v := fileView{ID: d.ID, Size: d.Fields[files.FieldSize]}
		v.Name, _ = d.Fields[files.FieldName].(string)
		v.Type, _ = d.Fields[files.FieldType].(string)
		v.Status, _ = d.Fields[files.FieldUploadStatus].(string)
		views = append(views, v)
	}
	return c.render("ls", fileListTemplate, views)
}

// runUpload создает документ файла и ставит загрузку его содержимого кусками
func (c *Cli) runUpload(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: docsync upload <path> <owner/branch> [parent-id]", ErrUsage)
	}
	path := args[0]
	fileID := uuid.NewString()
	remote, err := parseRemote(args[1], fileID)
	if err != nil {
		return err
	}
	parent := ""
	if len(args) == 3 {
		parent = args[2]
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", files.ErrNotFile, path)
	}

	m := c.fileManager()
	name := filepath.Base(path)
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if _, err := m.NewFile(ctx, name, fileID, "", info.ModTime(), info.Size(), ext, parent, false); err != nil {
		return err
	}

	res, err := m.Upload(ctx, fileID, f, remote)
	if err != nil {
		return err
	}
	c.io.Printf("Uploading %s: %d bytes in %d chunk(s), id %s\n", name, res.Size, res.ChunkCount, fileID)

	if c.online {
		c.io.Println("Waiting for upload...")
		if err := c.engine.WaitIdle(ctx); err != nil {
			return fmt.Errorf("upload interrupted: %w", err)
		}
		status, err := m.Status(ctx, fileID)
		if err != nil {
			return err
		}
		c.io.Printf("Upload status: %s\n", status)
	}
	return nil
}
