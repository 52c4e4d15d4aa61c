package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/shotbook/backend/internal/config"
	"github.com/shotbook/backend/internal/diagram"
	"github.com/shotbook/backend/internal/models"
)

type saveLayoutRequest struct {
	Name  string       `json:"name" binding:"required"`
	Scene SceneRequest `json:"scene" binding:"required"`
}

// SaveLayout validates and stores a named scene.
func SaveLayout(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req saveLayoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid layout: " + err.Error()})
			return
		}

		// Reject scenes that cannot be built before they hit storage.
		if _, err := req.Scene.BuildGameState(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sceneJSON, err := json.Marshal(req.Scene)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode scene"})
			return
		}

		var layout models.Layout
		err = db.Get(&layout,
			`INSERT INTO layouts (name, scene) VALUES ($1, $2)
			 RETURNING id, name, scene, created_at, updated_at`,
			req.Name, sceneJSON)
		if err != nil {
			log.Printf("[LAYOUTS] Failed to insert layout %q: %v", req.Name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save layout"})
			return
		}

		c.JSON(http.StatusCreated, layout)
	}
}

// ListLayouts returns all saved layouts, newest first.
func ListLayouts(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		layouts := []models.Layout{}
		err := db.Select(&layouts,
			`SELECT id, name, scene, created_at, updated_at
			 FROM layouts ORDER BY created_at DESC`)
		if err != nil {
			log.Printf("[LAYOUTS] Failed to list layouts: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list layouts"})
			return
		}
		c.JSON(http.StatusOK, layouts)
	}
}

// GetLayout returns one saved layout by id.
func GetLayout(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		layout, ok := fetchLayout(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, layout)
	}
}

// DeleteLayout removes a saved layout by id.
func DeleteLayout(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := db.Exec(`DELETE FROM layouts WHERE id = $1`, c.Param("id"))
		if err != nil {
			log.Printf("[LAYOUTS] Failed to delete layout %s: %v", c.Param("id"), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete layout"})
			return
		}
		if n, _ := res.RowsAffected(); n == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// RenderLayout renders a stored layout's scene to PNG, sharing the scene
// render cache with RenderDiagram.
func RenderLayout(db *sqlx.DB, rdb *redis.Client, cfg *config.Config, renderer *diagram.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		layout, ok := fetchLayout(c, db)
		if !ok {
			return
		}

		var req SceneRequest
		if err := json.Unmarshal(layout.Scene, &req); err != nil {
			log.Printf("[LAYOUTS] Corrupt scene for layout %d: %v", layout.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "stored scene is corrupt"})
			return
		}
		renderScene(c, &req, rdb, cfg, renderer)
	}
}

func fetchLayout(c *gin.Context, db *sqlx.DB) (*models.Layout, bool) {
	var layout models.Layout
	err := db.Get(&layout,
		`SELECT id, name, scene, created_at, updated_at FROM layouts WHERE id = $1`,
		c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
		return nil, false
	}
	if err != nil {
		log.Printf("[LAYOUTS] Failed to fetch layout %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch layout"})
		return nil, false
	}
	return &layout, true
}
