package canvas

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
)

var ErrStale = errors.New("canvas: stale chart update")

const DefaultTTL = 30 * time.Minute

// Image — график, привязанный к холсту.
type Image struct {
	Generation uint64
	PNG        []byte
	Airlines   []string
}

// Store хранит по одному графику на холст. Новый график заменяет старый,
// но только если он получен позже уже показанного.
type Store struct {
	mu         sync.Mutex
	images     *cache.Cache
	generation atomic.Uint64
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Store{
		images: cache.New(ttl, ttl*2),
	}
}

// Begin выдаёт поколение для очередного обновления графика.
func (s *Store) Begin() uint64 {
	return s.generation.Add(1)
}

// Commit привязывает график к холсту. Если холст уже показывает график того же
// или более нового поколения, возвращается ErrStale.
func (s *Store) Commit(canvasID string, image Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.get(canvasID); ok && image.Generation <= current.Generation {
		return ErrStale
	}

	s.images.SetDefault(canvasID, image)

	return nil
}

// Get возвращает график, привязанный к холсту.
func (s *Store) Get(canvasID string) (Image, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.get(canvasID)
}

// Applied — поколение графика, показанного на холсте (0, если графика нет).
func (s *Store) Applied(canvasID string) uint64 {
	image, _ := s.Get(canvasID)

	return image.Generation
}

func (s *Store) get(canvasID string) (Image, bool) {
	v, ok := s.images.Get(canvasID)
	if !ok {
		return Image{}, false
	}

	image, ok := v.(Image)

	return image, ok
}
