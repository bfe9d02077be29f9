package datahub

import (
	"io"
	"os"
	"path"
	"strconv"

	"github.com/pkg/errors"
	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// hubClient is the slice of SFTP behaviour the puller needs. Tests swap
// in a mock.
type hubClient interface {
	ReadDir(dir string) ([]os.FileInfo, error)
	Download(remotePath, dest string) error
	Close()
}

type sftpHubClient struct {
	sftp *sftp.Client
}

func newHubClient(profile *PullProfile) (*sftpHubClient, error) {
	key, err := os.ReadFile(profile.PrivateKeyFile)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read the private key file %v", profile.PrivateKeyFile)
	}

	signer, err := ssh.ParsePrivateKey(key)
	if err != nil {
		return nil, errors.Wrap(err, "Could not parse the private key")
	}

	tcpConn, err := ssh.Dial("tcp", profile.Host+":"+strconv.Itoa(profile.Port),
		&ssh.ClientConfig{
			User: profile.User,
			Auth: []ssh.AuthMethod{
				ssh.PublicKeys(signer),
			},
			HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		},
	)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not connect to %v", profile.Host)
	}

	sftpClient, err := sftp.NewClient(tcpConn)
	if err != nil {
		return nil, errors.Wrap(err, "Could not start an SFTP session")
	}

	return &sftpHubClient{
		sftp: sftpClient,
	}, nil
}

func (s *sftpHubClient) ReadDir(dir string) ([]os.FileInfo, error) {
	return s.sftp.ReadDir(dir)
}

func (s *sftpHubClient) Download(remotePath string, dest string) error {
	file, err := s.sftp.Open(remotePath)
	if err != nil {
		return err
	}
	defer file.Close()
	return s.save(file, dest)
}

func (s *sftpHubClient) save(file *sftp.File, dest string) error {
	if err := os.MkdirAll(dest, 0700); err != nil {
		return err
	}
	_, fileName := path.Split(file.Name())
	downFile, err := os.Create(path.Join(dest, fileName))
	if err != nil {
		return err
	}
	defer downFile.Close()

	fileStat, err := file.Stat()
	if err != nil {
		return err
	}
	size := fileStat.Size()

	n, err := io.Copy(downFile, io.LimitReader(file, size))
	if err != nil {
		return err
	}
	if n != size {
		return errors.Errorf("Download stopped at [%d] of [%d] bytes", n, size)
	}

	return nil
}

func (s *sftpHubClient) Close() {
	if s.sftp != nil {
		s.sftp.Close()
	}
}
