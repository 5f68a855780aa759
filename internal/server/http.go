package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/you/connectfour/internal/game"
)

// maxAnalyzeCells bounds the boards POST /analyze accepts. Search depth is
// bounded separately by Level.Fits.
const maxAnalyzeCells = 16 * 16

type AnalyzeRequest struct {
	Board  string `json:"board" binding:"required"`
	Player string `json:"player"` // x|o, empty for the side to move
	Level  string `json:"level"`
}

func (a *App) analyzeHandler(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := game.ParseBoard(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if b.Rows*b.Cols > maxAnalyzeCells {
		c.JSON(http.StatusBadRequest, gin.H{"error": "board too large"})
		return
	}
	level := a.Level
	if req.Level != "" {
		if level, err = game.ParseLevel(req.Level); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if !level.Fits(b.Cols) {
		c.JSON(http.StatusBadRequest, gin.H{"error": errors.Wrapf(game.ErrTooDeep, "%s on %d columns", level, b.Cols).Error()})
		return
	}
	p := b.ToMove()
	if req.Player != "" {
		if p, err = game.ParseSide(req.Player); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, game.Analyze(b, p, level, nil))
}

func (a *App) leaderboardHandler(c *gin.Context) {
	if a.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no store"})
		return
	}
	rows, err := a.Store.Leaderboard(c.Request.Context())
	if err != nil {
		log.Println("leaderboard err:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (a *App) recentHandler(c *gin.Context) {
	if a.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no store"})
		return
	}
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	rows, err := a.Store.RecentGames(c.Request.Context(), limit)
	if err != nil {
		log.Println("recent games err:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (a *App) Routes() http.Handler {
	r := gin.Default()
	// simple CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/ws", func(c *gin.Context) { wsHandler(a, c.Writer, c.Request) })
	r.GET("/leaderboard", a.leaderboardHandler)
	r.GET("/recent", a.recentHandler)
	r.POST("/analyze", a.analyzeHandler)
	return r
}

func wsHandler(app *App, w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		http.Error(w, "username required", http.StatusBadRequest)
		return
	}
	if username == game.Bot {
		http.Error(w, "username reserved", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	ws := &WSConn{Conn: conn}
	app.Hub.SetConn(username, ws)

	// register or rejoin; keep the socket open while waiting
	app.waitOrPair(username)

	go func() {
		defer func() {
			conn.Close()
			app.Hub.DelConn(username, ws)
			go app.ForfeitIfNotRejoined(username)
		}()
		for {
			var in inbound
			if err := conn.ReadJSON(&in); err != nil {
				log.Println("read err:", err)
				return
			}
			switch in.Type {
			case "move":
				var mv Move
				if err := decode(in.Data, &mv); err != nil {
					app.sendError(username, err.Error())
					continue
				}
				app.HandleMove(username, mv.Col)
			case "regame":
				req := Regame{Mode: "matchmaking"}
				if len(in.Data) > 0 {
					if err := json.Unmarshal(in.Data, &req); err != nil {
						app.sendError(username, err.Error())
						continue
					}
				}
				log.Printf("Received regame from %s (mode=%s, level=%s)", username, req.Mode, req.Level)
				app.HandleRegame(username, req)
			default:
				app.sendError(username, "unknown message type "+strconv.Quote(in.Type))
			}
		}
	}()
}

func decode(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return errors.New("missing data")
	}
	return json.Unmarshal(raw, v)
}
