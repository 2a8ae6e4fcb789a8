package pipeline

import (
	"bytes"
	"context"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/apigraph/pkg/builder"
	"github.com/matzehuels/apigraph/pkg/cache"
	"github.com/matzehuels/apigraph/pkg/complexity"
	"github.com/matzehuels/apigraph/pkg/config"
	"github.com/matzehuels/apigraph/pkg/decompose"
	"github.com/matzehuels/apigraph/pkg/errors"
	"github.com/matzehuels/apigraph/pkg/io"
	"github.com/matzehuels/apigraph/pkg/model"
	"github.com/matzehuels/apigraph/pkg/observability"
	"github.com/matzehuels/apigraph/pkg/resolver"
)

// Runner executes pipeline stages with caching. It holds no per-run state
// and may be shared.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer uses
// cache.DefaultKeyer and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Loaded is a built complete graph with the inputs it came from.
type Loaded struct {
	Config     config.Config
	Graph      *model.Graph
	Build      builder.Stats
	FactsHash  string
	ConfigHash string
	BuildTime  time.Duration
}

// Result is the outcome of [Runner.Execute].
type Result struct {
	*Loaded
	// SubGraphs maps subgraph roots to graphs. Without a resource it holds
	// the complete graph under the empty key.
	SubGraphs map[string]*model.Graph
	// Roots lists the SubGraphs keys, the resource first.
	Roots []string
	// Artifacts maps root, then format, to rendered bytes.
	Artifacts map[string]map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Execute runs every stage.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	loaded, err := r.Load(ctx, opts.FactsPath, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	res := &Result{Loaded: loaded}
	res.Stats.Nodes = loaded.Graph.NodeCount()
	res.Stats.Edges = loaded.Graph.EdgeCount()
	res.Stats.BuildTime = loaded.BuildTime
	res.Stats.LoadTime = time.Since(start) - loaded.BuildTime

	if opts.Resource == "" {
		res.SubGraphs = map[string]*model.Graph{"": loaded.Graph}
		res.Roots = []string{""}
	} else {
		start = time.Now()
		subs, hit, err := r.Decompose(ctx, loaded, opts.Resource, opts.Refresh)
		if err != nil {
			return nil, err
		}
		res.SubGraphs = subs
		res.Roots = Roots(subs, opts.Resource)
		res.CacheInfo.DecomposeHit = hit
		res.Stats.DecomposeTime = time.Since(start)
		r.Logger.Info("decomposed resource",
			"resource", opts.Resource,
			"subgraphs", len(subs),
			"cached", hit,
			"duration", res.Stats.DecomposeTime)
	}
	res.Stats.SubGraphs = len(res.SubGraphs)

	start = time.Now()
	res.Artifacts = make(map[string]map[string][]byte, len(res.Roots))
	for _, root := range res.Roots {
		res.Artifacts[root] = make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, hit, err := r.renderCached(ctx, loaded, res.SubGraphs[root], opts, root, format)
			if err != nil {
				return nil, err
			}
			if hit {
				res.CacheInfo.ArtifactHits++
			} else {
				res.CacheInfo.ArtifactMiss++
			}
			res.Artifacts[root][format] = data
		}
	}
	res.Stats.RenderTime = time.Since(start)
	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"artifacts", res.CacheInfo.ArtifactHits+res.CacheInfo.ArtifactMiss,
		"cached", res.CacheInfo.ArtifactHits,
		"duration", res.Stats.RenderTime)
	return res, nil
}

// Load reads the configuration and the facts document and builds the
// complete graph. An empty configPath uses the defaults.
func (r *Runner) Load(ctx context.Context, factsPath, configPath string) (*Loaded, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	matchers, err := cfg.Matchers()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(factsPath)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "facts %s", factsPath)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read facts %s", factsPath)
	}
	doc, err := resolver.Decode(bytes.NewReader(data), matchers.Flatten)
	if err != nil {
		observability.Pipeline().OnBuild(ctx, factsPath, 0, 0, 0, err)
		return nil, err
	}

	var cfgBuf bytes.Buffer
	if err := cfg.Encode(&cfgBuf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}

	opts, err := builder.OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	b := builder.New(doc, opts, r.Logger)
	g := b.Build()
	loaded := &Loaded{
		Config:     cfg,
		Graph:      g,
		Build:      b.Stats(),
		FactsHash:  cache.Hash(data),
		ConfigHash: cache.Hash(cfgBuf.Bytes()),
		BuildTime:  time.Since(start),
	}
	observability.Pipeline().OnBuild(ctx, factsPath, g.NodeCount(), g.EdgeCount(), loaded.BuildTime, nil)
	r.Logger.Info("built type graph",
		"types", len(doc.TypeNames()),
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"dropped", loaded.Build.Dropped,
		"duration", loaded.BuildTime)
	return loaded, nil
}

// Decompose returns the subgraphs of resource, from the cache when possible.
// It reports whether the result was cached.
func (r *Runner) Decompose(ctx context.Context, l *Loaded, resource string, refresh bool) (map[string]*model.Graph, bool, error) {
	key := r.Keyer.DecompositionKey(l.FactsHash, l.ConfigHash, resource)
	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if subs, err := io.ReadSubGraphs(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, observability.KindDecomposition)
				return subs, true, nil
			}
			r.Logger.Debug("discarding unreadable cache entry", "key", key)
		}
		observability.Cache().OnCacheMiss(ctx, observability.KindDecomposition)
	}

	start := time.Now()
	subs, err := r.subGraphs(l, resource)
	observability.Pipeline().OnDecompose(ctx, resource, len(subs), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	var buf bytes.Buffer
	if err := io.WriteSubGraphs(subs, &buf); err == nil {
		r.store(ctx, key, observability.KindDecomposition, buf.Bytes(), cache.TTLDecomposition)
	}
	return subs, false, nil
}

func (r *Runner) subGraphs(l *Loaded, resource string) (map[string]*model.Graph, error) {
	d, err := r.decomposer(l)
	if err != nil {
		return nil, err
	}
	return d.SubGraphs(resource)
}

func (r *Runner) store(ctx context.Context, key, kind string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "kind", kind, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, kind, len(data))
}

// Score scores the pivot subgraph of resource.
func (r *Runner) Score(l *Loaded, resource string) (*complexity.Result, error) {
	d, err := r.decomposer(l)
	if err != nil {
		return nil, err
	}
	return d.Score(resource)
}

func (r *Runner) decomposer(l *Loaded) (*decompose.Decomposer, error) {
	opts, err := decompose.OptionsFromConfig(l.Config)
	if err != nil {
		return nil, err
	}
	return decompose.New(l.Graph, opts, r.Logger), nil
}

func (r *Runner) renderCached(ctx context.Context, l *Loaded, g *model.Graph, opts Options, root, format string) ([]byte, bool, error) {
	key := r.Keyer.ArtifactKey(l.FactsHash, l.ConfigHash, cache.ArtifactKeyOpts{
		Resource: opts.Resource,
		Root:     root,
		Format:   format,
		Detailed: opts.Detailed,
	})
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, observability.KindArtifact)
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, observability.KindArtifact)
	}

	start := time.Now()
	data, err := Render(ctx, g, RenderOptions{Root: root, Format: format, Detailed: opts.Detailed})
	observability.Pipeline().OnRender(ctx, root, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	r.store(ctx, key, observability.KindArtifact, data, cache.TTLArtifact)
	return data, false, nil
}

// Roots returns the keys of subs with resource first and the rest sorted.
func Roots(subs map[string]*model.Graph, resource string) []string {
	roots := make([]string, 0, len(subs))
	for name := range subs {
		if name != resource {
			roots = append(roots, name)
		}
	}
	slices.Sort(roots)
	if _, ok := subs[resource]; ok {
		roots = append([]string{resource}, roots...)
	}
	return roots
}

// Close releases the cache.
func (r *Runner) Close() error { return r.Cache.Close() }
