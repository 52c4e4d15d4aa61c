package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/shotbook/backend/internal/config"
	"github.com/shotbook/backend/internal/diagram"
)

// RenderDiagram renders a scene description to a PNG diagram.
func RenderDiagram(rdb *redis.Client, cfg *config.Config, renderer *diagram.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SceneRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scene JSON: " + err.Error()})
			return
		}
		renderScene(c, &req, rdb, cfg, renderer)
	}
}

// renderScene is the shared render path for ad hoc scenes and stored
// layouts. Rendered bytes are cached in Redis keyed by a hash of the
// canonical scene JSON, so repeated requests for the same scene skip the
// compositing work.
func renderScene(c *gin.Context, req *SceneRequest, rdb *redis.Client, cfg *config.Config, renderer *diagram.Renderer) {
	key, hashed := sceneCacheKey(req)
	if hashed && rdb != nil {
		if cached, err := rdb.Get(c.Request.Context(), key).Bytes(); err == nil {
			c.Header("X-Diagram-Cache", "hit")
			c.Data(http.StatusOK, "image/png", cached)
			return
		}
	}

	state, err := req.BuildGameState()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pngBytes, err := renderer.Render(state)
	if err != nil {
		log.Printf("[RENDER] Failed to render scene: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render diagram"})
		return
	}

	if hashed && rdb != nil {
		ttl := time.Duration(cfg.DiagramCacheTTLSecs) * time.Second
		if err := rdb.Set(c.Request.Context(), key, pngBytes, ttl).Err(); err != nil {
			log.Printf("[CACHE] Failed to store diagram: %v", err)
		}
	}

	c.Header("X-Diagram-Cache", "miss")
	c.Data(http.StatusOK, "image/png", pngBytes)
}

// sceneCacheKey derives a stable cache key from the scene. Marshaling the
// parsed struct (not the raw body) normalizes field order and whitespace.
func sceneCacheKey(req *SceneRequest) (string, bool) {
	canonical, err := json.Marshal(req)
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(canonical)
	return "diagram:" + hex.EncodeToString(sum[:]), true
}
