package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stkhm/form-review-services/api/internal/config"
	formsapp "github.com/stkhm/form-review-services/api/internal/forms/application"
	identityapp "github.com/stkhm/form-review-services/api/internal/identity/application"
	mongodoc "github.com/stkhm/form-review-services/api/internal/infrastructure/mongo"
	authhttp "github.com/stkhm/form-review-services/api/internal/interfaces/http/auth"
	"github.com/stkhm/form-review-services/api/internal/interfaces/http/common"
	formshttp "github.com/stkhm/form-review-services/api/internal/interfaces/http/forms"
	usershttp "github.com/stkhm/form-review-services/api/internal/interfaces/http/users"
	"github.com/stkhm/form-review-services/api/internal/token"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Server は HTTP サーバーのライフサイクルを管理し、各ハンドラへ依存注入する
// コンポジションルート。ドメインロジックはここに書かない。
type Server struct {
	logger         *log.Logger
	client         *mongo.Client
	database       *mongo.Database
	users          *mongo.Collection
	tokens         *token.Service
	authService    identityapp.AuthService
	formCommands   formsapp.FormCommandService
	formQueries    formsapp.FormQueryService
	reviewQueries  formsapp.ReviewQueryService
	addr           string
	allowedOrigins []string
}

// New は Config と Mongo クライアントを受け取り、アプリケーションサービスと
// ハンドラを組み立てた Server を返す。依存解決の起点。
func New(cfg config.Config, client *mongo.Client) *Server {
	srv := &Server{
		logger:         cfg.ServerLog,
		client:         client,
		database:       client.Database(cfg.MongoDatabase),
		tokens:         token.NewService(cfg.JWTSecret),
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
	}
	srv.users = srv.database.Collection(cfg.UserCollection)

	userRepo := mongodoc.NewUserRepository(srv.database, cfg.UserCollection)
	srv.authService = identityapp.NewAuthService(userRepo, srv.tokens, cfg.MasterEmail)

	formRepo := mongodoc.NewFormRepository(srv.database, cfg.FormCollection)
	ownerDir := mongodoc.NewOwnerDirectory(srv.database, cfg.UserCollection)
	srv.formCommands = formsapp.NewFormCommandService(formRepo, ownerDir)
	srv.formQueries = formsapp.NewFormQueryService(formRepo)
	srv.reviewQueries = formsapp.NewReviewQueryService(formRepo, ownerDir)

	return srv
}

// Run はHTTPサーバーを起動し、ルーティングやミドルウェアを組み立てる。
func (s *Server) Run() error {
	if err := s.ensureIndexes(context.Background()); err != nil {
		s.logger.Printf("users インデックスの作成に失敗しました: %v", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())

	authHandler := authhttp.NewHandler(authhttp.Config{
		Logger: s.logger,
		Auth:   s.authService,
	})
	formsHandler := formshttp.NewHandler(formshttp.Config{
		Logger:   s.logger,
		Commands: s.formCommands,
		Queries:  s.formQueries,
	})
	usersHandler := usershttp.NewHandler(usershttp.Config{
		Logger:  s.logger,
		Reviews: s.reviewQueries,
	})

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			authHandler.Register(r, s.authMiddleware)
		})
		r.Route("/forms", func(r chi.Router) {
			formsHandler.Register(r, s.authMiddleware)
		})
		r.Route("/users", func(r chi.Router) {
			usersHandler.Register(r, s.authMiddleware)
		})
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP サーバー起動: http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// withCORS は許可されたオリジン情報をもとに CORS ヘッダーを付与するミドルウェアを返す。
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// originAllowed は指定された Origin が許可リストに含まれるか判定する。
func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler は MongoDB への疎通確認を行い、監視系からのヘルスチェック要求に応える。
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// authMiddleware は Authorization ヘッダーのベアラートークンを検証し、
// 認証済みクレームをコンテキストへ詰める。全保護ルートで共用する。
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "No token, authorization denied"})
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "No token, authorization denied"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "No token, authorization denied"})
			return
		}

		claims, err := s.tokens.Verify(tokenString)
		if err != nil {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "Token is not valid"})
			return
		}

		ctx := common.ContextWithClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ensureIndexes は users コレクションに email のユニークインデックスを用意する。
// 登録時のメール重複はこのインデックス違反として検出される。
func (s *Server) ensureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// writeJSON は JSON レスポンスの共通書き込み処理。
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Printf("JSON エンコードに失敗: %v", err)
	}
}

// shutdown は MongoDB クライアントをタイムアウト付きで切断する。
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Printf("MongoDB 切断時にエラー: %v", err)
	}
}

// waitForShutdown は ListenAndServe の終了と OS シグナルを監視し、graceful shutdown を実現する。
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("サーバーが異常終了: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("シグナル %s を受信。サーバー停止処理を開始します。", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("サーバー停止時にエラー: %v", err)
		}
	}

	srv.shutdown(context.Background())
}
