package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"notes-api/internal/auth"
	"notes-api/internal/config"
	"notes-api/internal/docstore"
	"notes-api/internal/http"
	"notes-api/internal/indexer"
	"notes-api/internal/llm"
	"notes-api/internal/rag"
	"notes-api/internal/service"
	"notes-api/internal/storage"
	"notes-api/internal/vectorstore"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// stores bundles the backend chosen by STORE_BACKEND.
type stores struct {
	notes storage.NoteStore
	users storage.UserStore
	close func()
}

// openStores connects the configured backend and brings its schema up to date.
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.StoreBackend {
	case config.BackendMongo:
		client, err := docstore.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.MongoDatabase)
		if err := docstore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		slog.Info("Document store initialized", "database", cfg.MongoDatabase)
		return &stores{
			notes: docstore.NewNoteRepo(db),
			users: docstore.NewUserRepo(db),
			close: func() { _ = client.Disconnect(context.Background()) },
		}, nil

	default:
		db, err := storage.Open(cfg.DBDriver, cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := storage.Migrate(ctx, db, cfg.DBDriver); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		slog.Info("Database initialized", "driver", cfg.DBDriver)
		return &stores{
			notes: storage.NewNoteRepo(db, cfg.DBDriver),
			users: storage.NewUserRepo(db, cfg.DBDriver),
			close: func() { _ = db.Close() },
		}, nil
	}
}

// semantic holds the optional search components. All fields are nil when disabled.
type semantic struct {
	vectorStore *vectorstore.QdrantStore
	pipeline    *indexer.Pipeline
	engine      rag.Engine
}

// setupSemantic connects Qdrant and the model endpoints. Any mismatch between the
// embedding size and the collection fails startup.
func setupSemantic(ctx context.Context, cfg *config.Config, notes storage.NoteStore) (*semantic, error) {
	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL, cfg.QdrantAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.QdrantVectorSize); err != nil {
		_ = vectorStore.Close()
		return nil, fmt.Errorf("failed to ensure Qdrant collection: %w", err)
	}
	slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.QdrantVectorSize)

	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.QdrantVectorSize)
	testEmbeddings, err := embedder.EmbedTexts(ctx, []string{"test"})
	if err != nil {
		_ = vectorStore.Close()
		return nil, fmt.Errorf("failed to validate embedding client: %w", err)
	}
	if len(testEmbeddings) == 0 || len(testEmbeddings[0]) != cfg.QdrantVectorSize {
		_ = vectorStore.Close()
		return nil, fmt.Errorf("embedding vector size mismatch: expected %d", cfg.QdrantVectorSize)
	}
	slog.Info("Embedding client validated", "vector_size", cfg.QdrantVectorSize)

	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName)

	return &semantic{
		vectorStore: vectorStore,
		pipeline:    indexer.NewPipeline(notes, embedder, vectorStore, cfg.QdrantCollection),
		engine:      rag.NewEngine(embedder, vectorStore, cfg.QdrantCollection, notes, llmClient),
	}, nil
}

func runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()

	// Interfaces stay untyped nil when semantic search is off.
	var (
		noteIndexer service.NoteIndexer
		reindexer   service.Reindexer
		engine      rag.Engine
		collections *vectorstore.QdrantStore
	)
	if cfg.SemanticSearchEnabled {
		sem, err := setupSemantic(ctx, cfg, st.notes)
		if err != nil {
			return err
		}
		defer func() {
			_ = sem.vectorStore.Close()
		}()
		noteIndexer = sem.pipeline
		reindexer = sem.pipeline
		engine = sem.engine
		collections = sem.vectorStore
		slog.Info("Semantic search enabled")
	} else {
		slog.Info("Semantic search disabled")
	}

	accounts := service.NewAccountService(
		st.users,
		auth.NewTokens([]byte(cfg.JWTSecret), cfg.TokenTTL),
		auth.NewHasher(cfg.BcryptCost),
	)

	deps := &http.Deps{
		Notes:          service.NewNotesService(st.notes, noteIndexer),
		Unscoped:       service.NewUnscopedNotesService(st.notes, noteIndexer),
		Accounts:       accounts,
		Search:         service.NewSearchService(engine, reindexer),
		Store:          st.notes,
		Collection:     cfg.QdrantCollection,
		CORSOrigins:    cfg.CORSOrigins,
		RateLimit:      cfg.RateLimit,
		Production:     cfg.Production(),
		UnscopedRoutes: cfg.UnscopedRoutes,
	}
	if collections != nil {
		deps.VectorStore = collections
	}
	if cfg.UnscopedRoutes {
		slog.Warn("Unscoped note routes are mounted; they perform no ownership checks")
	}

	server := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           http.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Starting API server", "addr", server.Addr, "env", cfg.AppEnv, "backend", cfg.StoreBackend)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, nethttp.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("API server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	slog.Info("API server stopped")
	return nil
}
