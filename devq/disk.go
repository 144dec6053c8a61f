package devq

import (
	"github.com/infinivision/anxiety/constant"
	"github.com/infinivision/anxiety/errmsg"
	"github.com/infinivision/anxiety/scheduler"
	"golang.org/x/sys/unix"
)

func NewDisk(path string) (*disk, error) {
	fd, err := unix.Open(path, unix.O_CREAT|unix.O_RDWR, 0664)
	if err != nil {
		return nil, err
	}
	return &disk{fd: fd}, nil
}

func (d *disk) Close() error {
	return unix.Close(d.fd)
}

func (d *disk) Flush() error {
	return unix.Fsync(d.fd)
}

func (d *disk) Do(rq *scheduler.Request) error {
	if rq == nil {
		return errmsg.InvalidRequest
	}
	switch {
	case rq.Write:
		n, err := unix.Pwrite(d.fd, rq.Data, rq.Sector*constant.BlockSize)
		switch {
		case err != nil:
			return err
		case n != len(rq.Data):
			return errmsg.WriteFailed
		}
	default:
		n, err := unix.Pread(d.fd, rq.Data, rq.Sector*constant.BlockSize)
		switch {
		case err != nil:
			return err
		case n != len(rq.Data):
			return errmsg.ReadFailed
		}
	}
	return nil
}
