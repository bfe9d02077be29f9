package datahub

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/stcorp/muninn-sentinel5p/s5p"
	"github.com/stcorp/muninn-sentinel5p/util"
)

//PullStats summarizes one completed pull run.
type PullStats struct {
	NumberPulled  int
	NumberSkipped int
	NumberError   int
	StartTime     time.Time
	EndTime       time.Time
}

func (stats *PullStats) String() string {
	return fmt.Sprintf(`
		Start:	%v
		End:	%v
		#Pulled:	%v
		#Skipped:	%v
		#Error:	%v
		`,
		stats.StartTime.Format("Mon Jan _2 15:04:05 2006"),
		stats.EndTime.Format("Mon Jan _2 15:04:05 2006"),
		stats.NumberPulled,
		stats.NumberSkipped,
		stats.NumberError)
}

//Puller downloads new products from the data hub into the local inbox.
type Puller struct {
	profile *PullProfile
	client  hubClient
	ctx     util.LogContext
}

//NewPuller connects to the data hub described by the profile.
func NewPuller(profile *PullProfile) (*Puller, error) {
	client, err := newHubClient(profile)
	if err != nil {
		return nil, err
	}
	return &Puller{
		profile: profile,
		client:  client,
		ctx:     &util.BasicLogContext{},
	}, nil
}

//Close releases the data hub connection.
func (p *Puller) Close() {
	p.client.Close()
}

//Run lists the remote directory and downloads every product file that a
//registered product type identifies, passes the profile allowlist, and is
//not already present in the inbox. Per-file download failures are counted
//and logged, they do not abort the run.
func (p *Puller) Run() (*PullStats, error) {
	entries, err := p.client.ReadDir(p.profile.RemoteDir)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not list the remote directory %v", p.profile.RemoteDir)
	}

	stats := &PullStats{StartTime: time.Now()}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()

		plugin, ok := s5p.IdentifyProduct([]string{name})
		if !ok || !p.profile.allows(plugin.ProductType()) {
			stats.NumberSkipped++
			continue
		}

		//Files already sitting in the inbox are not pulled again.
		if _, err := os.Stat(filepath.Join(p.profile.Inbox, name)); err == nil {
			stats.NumberSkipped++
			continue
		}

		if err := p.client.Download(path.Join(p.profile.RemoteDir, name), p.profile.Inbox); err != nil {
			stats.NumberError++
			util.LogSimpleErr(p.ctx, fmt.Sprintf("Error pulling `%s`", name), err)
			continue
		}
		stats.NumberPulled++
	}

	stats.EndTime = time.Now()
	util.LogInfo(p.ctx, fmt.Sprintf("Pull complete: %v", stats.String()))
	return stats, nil
}
