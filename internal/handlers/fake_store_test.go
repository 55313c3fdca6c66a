package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"reflect"
	"sort"
	"testing"

	"devlearn/backend/internal/handlers"
	"devlearn/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fakeStore is an in-memory store.Store. Inserted documents go through a
// bson round-trip so they come back shaped like real driver output
// (time.Time as primitive.DateTime and so on).
type fakeStore struct {
	docs        map[string][]bson.M
	unavailable bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[string][]bson.M)}
}

func (f *fakeStore) Insert(_ context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	if f.unavailable {
		return primitive.NilObjectID, store.ErrUnavailable
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return primitive.NilObjectID, err
	}
	id := primitive.NewObjectID()
	m["_id"] = id
	f.docs[collection] = append(f.docs[collection], m)
	return id, nil
}

func (f *fakeStore) Find(_ context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if f.unavailable {
		return nil, store.ErrUnavailable
	}
	var out []bson.M
	for _, d := range f.docs[collection] {
		if matches(d, filter) {
			out = append(out, d)
			if int64(len(out)) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeStore) FindOne(_ context.Context, collection string, filter bson.M) (bson.M, error) {
	if f.unavailable {
		return nil, store.ErrUnavailable
	}
	for _, d := range f.docs[collection] {
		if matches(d, filter) {
			return d, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) FindByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error) {
	return f.FindOne(ctx, collection, bson.M{"_id": id})
}

func (f *fakeStore) Collections(_ context.Context) ([]string, error) {
	if f.unavailable {
		return nil, store.ErrUnavailable
	}
	names := make([]string, 0, len(f.docs))
	for name := range f.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeStore) Ping(_ context.Context) error {
	if f.unavailable {
		return store.ErrUnavailable
	}
	return nil
}

func matches(doc, filter bson.M) bool {
	for k, v := range filter {
		if !reflect.DeepEqual(doc[k], v) {
			return false
		}
	}
	return true
}

// setupRouter wires the handlers onto a test engine with the same routes the
// server registers.
func setupRouter(f *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	authHandler := handlers.NewAuthHandler(f, log)
	noteHandler := handlers.NewNoteHandler(f, log)
	progressHandler := handlers.NewProgressHandler(f, log)
	videoHandler := handlers.NewVideoHandler()
	aiHandler := handlers.NewAIHandler()
	healthHandler := handlers.NewHealthHandler(f, "devlearn_test", true)

	r := gin.New()
	r.GET("/", healthHandler.Root)
	r.GET("/test", healthHandler.DBTest)
	api := r.Group("/api")
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/notes", noteHandler.ListNotes)
	api.POST("/notes", noteHandler.CreateNote)
	api.GET("/progress/:user_id", progressHandler.GetProgress)
	api.POST("/progress", progressHandler.UpdateProgress)
	api.GET("/videos", videoHandler.ListVideos)
	api.POST("/ai/mentor", aiHandler.Mentor)
	api.POST("/ai/convert", aiHandler.Convert)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
