package adapter

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"glpi-inventory/internal/domain"
	"glpi-inventory/internal/glpi"
	"glpi-inventory/internal/logging"
)

// GLPIAdapterName identifies the GLPI adapter
const GLPIAdapterName = "glpi"

// killTimeout bounds the session close, which runs even after the caller's
// context is done
const killTimeout = 10 * time.Second

// GLPIAdapter registers GLPI computers as inventory hosts
type GLPIAdapter struct {
	url   string
	creds domain.Credentials
	log   logrus.FieldLogger
	opts  []glpi.Option
}

// NewGLPIAdapter creates a GLPI adapter. A nil logger discards output.
func NewGLPIAdapter(url string, creds domain.Credentials, log logrus.FieldLogger, opts ...glpi.Option) *GLPIAdapter {
	if log == nil {
		log = logging.Discard()
	}
	log = log.WithField("adapter", GLPIAdapterName)
	return &GLPIAdapter{
		url:   url,
		creds: creds,
		log:   log,
		opts:  append(opts, glpi.WithLogger(log)),
	}
}

// Name returns the adapter identifier
func (a *GLPIAdapter) Name() string {
	return GLPIAdapterName
}

// Type returns the adapter type
func (a *GLPIAdapter) Type() AdapterType {
	return AdapterTypeOneShot
}

// Sync fetches the inventory
func (a *GLPIAdapter) Sync(ctx context.Context) (*domain.Inventory, error) {
	return fetch(ctx, a.log, a.url, a.creds, a.opts)
}

// Fetch pulls the GLPI Computer collection and returns it as an inventory
// keyed by hostname. It fails with a *domain.ConfigurationError before any
// request when the URL or a token is empty, and with a *glpi.RemoteError
// when a call fails.
func Fetch(ctx context.Context, apiBaseURL string, creds domain.Credentials, opts ...glpi.Option) (*domain.Inventory, error) {
	return fetch(ctx, logging.Discard(), apiBaseURL, creds, opts)
}

func fetch(ctx context.Context, log logrus.FieldLogger, apiBaseURL string, creds domain.Credentials, opts []glpi.Option) (*domain.Inventory, error) {
	if strings.TrimSpace(apiBaseURL) == "" {
		return nil, domain.Missing("glpi_url")
	}
	if creds.AppToken == "" {
		return nil, domain.Missing("app_token")
	}
	if creds.UserToken == "" {
		return nil, domain.Missing("user_token")
	}

	client := glpi.NewClient(apiBaseURL, opts...)
	log = log.WithField("url", client.BaseURL())

	session, err := client.InitSession(ctx, creds)
	if err != nil {
		return nil, errors.Wrap(err, "open session")
	}
	defer closeSession(ctx, log, session)

	assets, err := session.ListComputers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list computers")
	}

	inv := domain.NewInventory()
	skipped := 0
	for _, asset := range assets {
		if !asset.HasName() {
			skipped++
			log.WithField(domain.VarAssetID, asset.ID).Debug("skipping computer without name")
			continue
		}
		inv.AddHost(asset.Name)
		inv.SetVariable(asset.Name, domain.VarAssetID, asset.ID)
	}

	log.WithFields(logrus.Fields{
		"hosts":   inv.Len(),
		"skipped": skipped,
	}).Info("inventory fetched")

	return inv, nil
}

// closeSession kills the session. Failures are logged, never returned.
func closeSession(ctx context.Context, log logrus.FieldLogger, session *glpi.Session) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), killTimeout)
	defer cancel()

	if err := session.Kill(ctx); err != nil {
		log.WithError(err).Warn("failed to close GLPI session")
	}
}
