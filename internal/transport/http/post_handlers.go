package http

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bidchat/bidchat-server/internal/store"
	"github.com/bidchat/bidchat-server/internal/utils"
)

// PostHandlers provides HTTP handlers for auction post endpoints.
type PostHandlers struct {
	store     store.Store
	uploadDir string
	log       *zerolog.Logger
}

// NewPostHandlers creates a new post handlers instance.
func NewPostHandlers(st store.Store, uploadDir string, logger *zerolog.Logger) *PostHandlers {
	return &PostHandlers{
		store:     st,
		uploadDir: uploadDir,
		log:       logger,
	}
}

// PostResponse represents an auction post in API responses.
type PostResponse struct {
	ID        string `json:"id"`
	OwnerID   int64  `json:"owner_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Photo     string `json:"photo,omitempty"`
	Price     int64  `json:"price"`
	Bidder    string `json:"bidder,omitempty"`
	CreatedAt string `json:"created_at"`
}

func postResponse(p *store.Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Title:     p.Title,
		Content:   p.Content,
		Photo:     p.Photo,
		Price:     p.Price,
		Bidder:    p.Bidder,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// CreatePost handles auction post creation with an optional photo upload.
// Expects a multipart form with title, content, price and photo fields.
// POST /api/posts
func (h *PostHandlers) CreatePost(c *gin.Context) {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		h.log.Error().Msg("user_id not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}
	uid, ok := userID.(int64)
	if !ok {
		h.log.Error().Msg("invalid user_id type in context")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "title is required"})
		return
	}
	content := c.PostForm("content")

	var price int64
	if raw := c.PostForm("price"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "price must be a non-negative integer"})
			return
		}
		price = parsed
	}

	post := &store.Post{
		ID:      utils.NewID(),
		OwnerID: uid,
		Title:   title,
		Content: content,
		Price:   price,
	}

	if file, err := c.FormFile("photo"); err == nil {
		filename := post.ID + filepath.Ext(file.Filename)
		dst := filepath.Join(h.uploadDir, filename)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			h.log.Error().Err(err).Str("dst", dst).Msg("failed to save uploaded photo")
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
			return
		}
		post.Photo = filepath.ToSlash(filepath.Join("uploads", filename))
	}

	if err := h.store.CreatePost(c.Request.Context(), post); err != nil {
		h.log.Error().Err(err).Str("title", title).Msg("failed to create post")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	created, err := h.store.GetPostByID(c.Request.Context(), post.ID)
	if err != nil {
		h.log.Error().Err(err).Str("post_id", post.ID).Msg("failed to load created post")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	h.log.Info().Str("post_id", post.ID).Int64("owner_id", uid).Msg("post created successfully")
	c.JSON(http.StatusCreated, postResponse(created))
}

// ListPosts handles listing all posts.
// GET /api/posts
func (h *PostHandlers) ListPosts(c *gin.Context) {
	posts, err := h.store.ListPosts(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list posts")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	response := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		response = append(response, postResponse(p))
	}

	c.JSON(http.StatusOK, response)
}

// GetPost handles fetching a single post.
// GET /api/posts/:id
func (h *PostHandlers) GetPost(c *gin.Context) {
	id := c.Param("id")

	post, err := h.store.GetPostByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "post not found"})
			return
		}
		h.log.Error().Err(err).Str("post_id", id).Msg("failed to get post")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, postResponse(post))
}
