package vectorstore

import (
	"context"
	"testing"

	"github.com/qdrant/go-client/qdrant"
)

func TestGRPCEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		urlStr   string
		wantErr  bool
		wantHost string
		wantPort int
		wantTLS  bool
	}{
		{
			name:     "valid URL",
			urlStr:   "http://localhost:6333",
			wantHost: "localhost",
			wantPort: 6334, // gRPC port is HTTP port + 1
		},
		{
			name:     "URL with custom port",
			urlStr:   "http://localhost:9000",
			wantHost: "localhost",
			wantPort: 9001,
		},
		{
			name:    "invalid URL",
			urlStr:  "://invalid",
			wantErr: true,
		},
		{
			name:     "URL without port",
			urlStr:   "http://qdrant.internal",
			wantHost: "qdrant.internal",
			wantPort: 6334,
		},
		{
			name:     "URL without hostname",
			urlStr:   "http://:6333",
			wantHost: "localhost",
			wantPort: 6334,
		},
		{
			name:     "https enables TLS",
			urlStr:   "https://cloud.qdrant.io:6333",
			wantHost: "cloud.qdrant.io",
			wantPort: 6334,
			wantTLS:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, port, useTLS, err := grpcEndpoint(tt.urlStr)
			if tt.wantErr {
				if err == nil {
					t.Fatal("grpcEndpoint() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("grpcEndpoint() unexpected error: %v", err)
			}
			if host != tt.wantHost {
				t.Errorf("host = %v, want %v", host, tt.wantHost)
			}
			if port != tt.wantPort {
				t.Errorf("port = %v, want %v", port, tt.wantPort)
			}
			if useTLS != tt.wantTLS {
				t.Errorf("useTLS = %v, want %v", useTLS, tt.wantTLS)
			}
		})
	}
}

func TestNewQdrantStore_InvalidURL(t *testing.T) {
	_, err := NewQdrantStore("://invalid", "")
	if err == nil {
		t.Error("NewQdrantStore() with invalid URL should return error")
	}
}

func TestQdrantStore_Upsert_EmptyPoints(t *testing.T) {
	// Returns before touching the client.
	store := &QdrantStore{}

	if err := store.Upsert(context.Background(), "notes", []Point{}); err != nil {
		t.Errorf("Upsert() with empty points should return early without error, got: %v", err)
	}
}

func TestQdrantStore_Delete_EmptyIDs(t *testing.T) {
	store := &QdrantStore{}

	if err := store.Delete(context.Background(), "notes", nil); err != nil {
		t.Errorf("Delete() with empty IDs should return early without error, got: %v", err)
	}
}

func TestQdrantStore_Search_InvalidK(t *testing.T) {
	store := &QdrantStore{}
	ctx := context.Background()

	for _, k := range []int{0, -1} {
		if _, err := store.Search(ctx, "notes", []float32{1.0, 2.0}, k, nil); err == nil {
			t.Errorf("Search() with k=%d should return error", k)
		}
	}
}

func TestBuildFilter(t *testing.T) {
	ctx := context.Background()

	t.Run("empty filters", func(t *testing.T) {
		if f := buildFilter(ctx, nil); f != nil {
			t.Errorf("buildFilter(nil) = %v, want nil", f)
		}
	})

	t.Run("unsupported types only", func(t *testing.T) {
		if f := buildFilter(ctx, map[string]any{"score": 1.5}); f != nil {
			t.Errorf("buildFilter() = %v, want nil", f)
		}
	})

	t.Run("owner and visibility", func(t *testing.T) {
		f := buildFilter(ctx, map[string]any{
			"owner_id":  "u1",
			"is_public": true,
			"version":   3,
		})
		if f == nil {
			t.Fatal("buildFilter() returned nil")
		}
		if len(f.Must) != 3 {
			t.Fatalf("len(Must) = %d, want 3", len(f.Must))
		}

		// Conditions are emitted in key order.
		byKey := make(map[string]*qdrant.Match)
		var keys []string
		for _, cond := range f.Must {
			field := cond.GetField()
			if field == nil {
				t.Fatalf("condition %v is not a field condition", cond)
			}
			keys = append(keys, field.Key)
			byKey[field.Key] = field.Match
		}
		wantKeys := []string{"is_public", "owner_id", "version"}
		for i, k := range wantKeys {
			if keys[i] != k {
				t.Errorf("keys[%d] = %q, want %q", i, keys[i], k)
			}
		}

		if got := byKey["owner_id"].GetKeyword(); got != "u1" {
			t.Errorf("owner_id keyword = %q, want u1", got)
		}
		if got := byKey["is_public"].GetBoolean(); !got {
			t.Error("is_public boolean = false, want true")
		}
		if got := byKey["version"].GetInteger(); got != 3 {
			t.Errorf("version integer = %d, want 3", got)
		}
	})
}

func TestConvertPayloadToMap(t *testing.T) {
	result := convertPayloadToMap(nil)
	if result == nil {
		t.Fatal("convertPayloadToMap() should return empty map, not nil")
	}
	if len(result) != 0 {
		t.Errorf("convertPayloadToMap() with nil should return empty map, got %d items", len(result))
	}

	payload := qdrant.NewValueMap(map[string]any{
		"note_id":   "n1",
		"is_public": false,
		"title":     "Groceries",
	})
	result = convertPayloadToMap(payload)
	if result["note_id"] != "n1" {
		t.Errorf("note_id = %v, want n1", result["note_id"])
	}
	if result["is_public"] != false {
		t.Errorf("is_public = %v, want false", result["is_public"])
	}
	if result["title"] != "Groceries" {
		t.Errorf("title = %v, want Groceries", result["title"])
	}
}

func TestCollectionStats(t *testing.T) {
	points := uint64(12)

	tests := []struct {
		name string
		info *qdrant.CollectionInfo
		want CollectionStats
	}{
		{
			name: "nil info",
			info: nil,
			want: CollectionStats{Status: "unknown"},
		},
		{
			name: "full description",
			info: &qdrant.CollectionInfo{
				Status:      qdrant.CollectionStatus_Green,
				PointsCount: &points,
				Config: &qdrant.CollectionConfig{
					Params: &qdrant.CollectionParams{
						VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{Size: 384}),
					},
				},
			},
			want: CollectionStats{Points: 12, VectorSize: 384, Status: "green"},
		},
		{
			name: "missing config",
			info: &qdrant.CollectionInfo{Status: qdrant.CollectionStatus_Yellow},
			want: CollectionStats{Status: "yellow"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collectionStats(tt.info); got != tt.want {
				t.Errorf("collectionStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
