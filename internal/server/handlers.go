package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/storage"
	"github.com/GriffinCanCode/storage/internal/logging"
	"github.com/GriffinCanCode/storage/internal/monitoring"
)

type handlers struct {
	root    string
	logger  *logging.Logger
	metrics *monitoring.Metrics
}

func newHandlers(root string, logger *logging.Logger, metrics *monitoring.Metrics) *handlers {
	return &handlers{root: root, logger: logger, metrics: metrics}
}

type pathRequest struct {
	Path string `json:"path" binding:"required"`
}

type contentRequest struct {
	Path    string `json:"path" binding:"required"`
	Content string `json:"content"`
}

type transferRequest struct {
	Source      string `json:"source" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Recursive   bool   `json:"recursive"`
}

type deleteRequest struct {
	Paths []string `json:"paths" binding:"required"`
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "storaged"})
}

// fail maps a typed error to an HTTP status.
func (h *handlers) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errInvalidPath):
		status = http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrPermission):
		status = http.StatusForbidden
	case errors.Is(err, storage.ErrConflict):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// run executes one filesystem operation under a metrics timer.
func (h *handlers) run(c *gin.Context, op string, fn func() (gin.H, error)) {
	timer := monitoring.NewTimer(h.metrics, op)
	body, err := fn()
	if err != nil {
		timer.Stop("error")
		h.fail(c, err)
		return
	}
	timer.Stop("ok")
	c.JSON(http.StatusOK, body)
}

func (h *handlers) read(c *gin.Context) {
	var req pathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.run(c, "read", func() (gin.H, error) {
		path, err := h.resolve(req.Path)
		if err != nil {
			return nil, err
		}
		data, err := storage.Get(path)
		if err != nil {
			return nil, err
		}
		h.metrics.AddBytesRead(len(data))
		return gin.H{"path": req.Path, "content": string(data), "size": len(data)}, nil
	})
}

func (h *handlers) write(c *gin.Context) {
	h.writeWith(c, "write", storage.Put)
}

func (h *handlers) appendContent(c *gin.Context) {
	h.writeWith(c, "append", storage.Append)
}

func (h *handlers) prepend(c *gin.Context) {
	h.writeWith(c, "prepend", storage.Prepend)
}

func (h *handlers) writeWith(c *gin.Context, op string, fn func(string, []byte) error) {
	var req contentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.run(c, op, func() (gin.H, error) {
		path, err := h.resolve(req.Path)
		if err != nil {
			return nil, err
		}
		if err := fn(path, []byte(req.Content)); err != nil {
			return nil, err
		}
		h.metrics.AddBytesWritten(len(req.Content))
		return gin.H{"written": true, "path": req.Path, "size": len(req.Content)}, nil
	})
}

func (h *handlers) remove(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.run(c, "delete", func() (gin.H, error) {
		resolved := make([]string, len(req.Paths))
		for i, p := range req.Paths {
			path, err := h.resolve(p)
			if err != nil {
				return nil, err
			}
			resolved[i] = path
		}
		if err := storage.Delete(resolved...); err != nil {
			return nil, err
		}
		return gin.H{"deleted": true, "count": len(resolved)}, nil
	})
}

func (h *handlers) mkdir(c *gin.Context) {
	var req pathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.run(c, "mkdir", func() (gin.H, error) {
		path, err := h.resolve(req.Path)
		if err != nil {
			return nil, err
		}
		if err := storage.MakeDirectory(path, storage.DefaultDirPerm); err != nil {
			return nil, err
		}
		return gin.H{"created": true, "path": req.Path}, nil
	})
}

func (h *handlers) copyEntry(c *gin.Context) {
	h.transferWith(c, "copy", storage.Copy, storage.CopyDirectory)
}

func (h *handlers) moveEntry(c *gin.Context) {
	h.transferWith(c, "move", storage.Move, storage.MoveDirectory)
}

func (h *handlers) transferWith(c *gin.Context, op string, file, dir func(string, string) error) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.run(c, op, func() (gin.H, error) {
		src, err := h.resolve(req.Source)
		if err != nil {
			return nil, err
		}
		dst, err := h.resolve(req.Destination)
		if err != nil {
			return nil, err
		}
		fn := file
		if req.Recursive {
			fn = dir
		}
		if err := fn(src, dst); err != nil {
			return nil, err
		}
		return gin.H{"source": req.Source, "destination": req.Destination}, nil
	})
}

func (h *handlers) clean(c *gin.Context) {
	h.treeWith(c, "clean", storage.CleanDirectory)
}

func (h *handlers) rmdir(c *gin.Context) {
	h.treeWith(c, "rmdir", storage.DeleteDirectory)
}

func (h *handlers) treeWith(c *gin.Context, op string, fn func(string) error) {
	var req pathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.run(c, op, func() (gin.H, error) {
		path, err := h.resolve(req.Path)
		if err != nil {
			return nil, err
		}
		if err := fn(path); err != nil {
			return nil, err
		}
		return gin.H{"path": req.Path}, nil
	})
}

func (h *handlers) list(c *gin.Context) {
	h.listWith(c, "list", storage.Files, storage.Directories)
}

func (h *handlers) walk(c *gin.Context) {
	h.listWith(c, "walk", storage.AllFiles, storage.AllDirectories)
}

func (h *handlers) listWith(c *gin.Context, op string, files, dirs func(string) ([]string, error)) {
	h.run(c, op, func() (gin.H, error) {
		path, err := h.resolve(c.Query("path"))
		if err != nil {
			return nil, err
		}
		fileList, err := files(path)
		if err != nil {
			return nil, err
		}
		dirList, err := dirs(path)
		if err != nil {
			return nil, err
		}
		return gin.H{
			"path":        c.Query("path"),
			"files":       fileList,
			"directories": dirList,
		}, nil
	})
}

func (h *handlers) stat(c *gin.Context) {
	h.run(c, "stat", func() (gin.H, error) {
		path, err := h.resolve(c.Query("path"))
		if err != nil {
			return nil, err
		}
		body := gin.H{
			"path":     c.Query("path"),
			"exists":   storage.Exists(path),
			"type":     storage.Type(path),
			"writable": storage.IsWritable(path),
		}
		if storage.IsFile(path) {
			size, err := storage.Size(path)
			if err != nil {
				return nil, err
			}
			modified, err := storage.LastModified(path)
			if err != nil {
				return nil, err
			}
			body["size"] = size
			body["modified"] = modified.Unix()
		}
		return body, nil
	})
}

func (h *handlers) mime(c *gin.Context) {
	h.run(c, "mime", func() (gin.H, error) {
		path, err := h.resolve(c.Query("path"))
		if err != nil {
			return nil, err
		}
		mtype, err := storage.MimeType(path)
		if err != nil {
			return nil, err
		}
		return gin.H{"path": c.Query("path"), "mime_type": mtype}, nil
	})
}
