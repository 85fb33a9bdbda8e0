package git

import (
	"fmt"

	"github.com/go-git/go-git/v5/config"
)

// remote.go contains remote operations: AddRemote, RemoveRemote, AddPushURL,
// ListRemotes. All writes go through writeConfig.

const (
	remoteSection = "remote"
	urlKey        = "url"
	pushURLKey    = "pushurl"
)

// Remote describes a configured remote
type Remote struct {
	Name     string
	URLs     []string
	PushURLs []string
}

// FetchURL returns the URL used for fetching
func (r Remote) FetchURL() string {
	if len(r.URLs) == 0 {
		return ""
	}
	return r.URLs[0]
}

// AddRemote adds a remote fetching all branches from url
func (c *Client) AddRemote(name, url string) error {
	cfg, err := c.readConfig()
	if err != nil {
		return err
	}
	if _, ok := cfg.Remotes[name]; ok {
		return ErrRemoteExists
	}

	rc := &config.RemoteConfig{
		Name: name,
		URLs: []string{url},
		Fetch: []config.RefSpec{
			config.RefSpec(fmt.Sprintf(config.DefaultFetchRefSpec, name)),
		},
	}
	if err := rc.Validate(); err != nil {
		return fmt.Errorf("invalid remote: %w", err)
	}
	cfg.Remotes[name] = rc

	return c.writeConfig(cfg)
}

// RemoveRemote removes a remote
func (c *Client) RemoveRemote(name string) error {
	cfg, err := c.readConfig()
	if err != nil {
		return err
	}
	if _, ok := cfg.Remotes[name]; !ok {
		return ErrRemoteNotFound
	}
	delete(cfg.Remotes, name)

	return c.writeConfig(cfg)
}

// AddPushURL appends url to the push URLs of an existing remote. When the
// remote has no explicit push URLs yet, its fetch URL is recorded first so
// pushes keep reaching it. The fetch URL itself is never changed.
func (c *Client) AddPushURL(name, url string) error {
	cfg, err := c.readConfig()
	if err != nil {
		return err
	}
	if _, ok := cfg.Remotes[name]; !ok {
		return ErrRemoteNotFound
	}

	fetchURLs := rawOptions(cfg, name, urlKey)
	existing := rawOptions(cfg, name, pushURLKey)
	effective := existing
	if len(effective) == 0 {
		effective = fetchURLs
	}
	for _, u := range effective {
		if u == url {
			return ErrPushURLExists
		}
	}

	// Shares its options with the remote's raw subsection, so Marshal keeps them.
	sub := cfg.Raw.Section(remoteSection).Subsection(name)
	if len(existing) == 0 && len(fetchURLs) > 0 {
		sub.AddOption(pushURLKey, fetchURLs[0])
	}
	sub.AddOption(pushURLKey, url)

	return c.writeConfig(cfg)
}

// ListRemotes lists all remotes sorted by name
func (c *Client) ListRemotes() ([]Remote, error) {
	cfg, err := c.readConfig()
	if err != nil {
		return nil, err
	}

	configs := make([]*config.RemoteConfig, 0, len(cfg.Remotes))
	for _, rc := range cfg.Remotes {
		configs = append(configs, rc)
	}
	sortRemotes(configs)

	remotes := make([]Remote, 0, len(configs))
	for _, rc := range configs {
		remotes = append(remotes, Remote{
			Name:     rc.Name,
			URLs:     rawOptions(cfg, rc.Name, urlKey),
			PushURLs: rawOptions(cfg, rc.Name, pushURLKey),
		})
	}
	return remotes, nil
}

func (c *Client) readConfig() (*config.Config, error) {
	cfg, err := c.repo.Config()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return cfg, nil
}

// writeConfig stores cfg. go-git folds pushurl values into RemoteConfig.URLs
// when reading and would write them back as url keys, so every remote's URLs
// are reset to the url options on disk first.
func (c *Client) writeConfig(cfg *config.Config) error {
	section := cfg.Raw.Section(remoteSection)
	for name, rc := range cfg.Remotes {
		if section.HasSubsection(name) {
			rc.URLs = rawOptions(cfg, name, urlKey)
		}
	}

	if err := c.repo.SetConfig(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// rawOptions returns every value of key in the remote's config section
func rawOptions(cfg *config.Config, name, key string) []string {
	section := cfg.Raw.Section(remoteSection)
	if !section.HasSubsection(name) {
		return []string{}
	}
	values := section.Subsection(name).Options.GetAll(key)
	if values == nil {
		return []string{}
	}
	return values
}
