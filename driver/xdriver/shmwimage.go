package xdriver

import (
	"image"
	"unsafe"

	"github.com/BurntSushi/xgb/shm"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/editsurface/scrollbar/util/imageutil"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/sys/unix"
)

// Image in a shared memory segment attached by the x server.
type shmWImage struct {
	opt   *wimageOptions
	segId shm.Seg
	img   *imageutil.BGRA

	shmId uintptr
	addr  uintptr
}

func newShmWImage(opt *wimageOptions) (*shmWImage, error) {
	// must run before the event loop starts (xgb extensions map)
	if err := shm.Init(opt.Conn); err != nil {
		return nil, errors.Wrap(err, "shm init")
	}
	segId, err := shm.NewSegId(opt.Conn)
	if err != nil {
		return nil, err
	}
	wi := &shmWImage{opt: opt, segId: segId}
	if err := wi.Resize(image.Rect(0, 0, 1, 1)); err != nil {
		return nil, err
	}
	return wi, nil
}

func (wi *shmWImage) Close() error {
	_ = shm.Detach(wi.opt.Conn, wi.segId)
	return shmClose(wi.shmId, wi.addr)
}

func (wi *shmWImage) Resize(r image.Rectangle) error {
	size := r.Dx() * r.Dy() * 4
	if size == 0 {
		size = 4
	}
	shmId, addr, err := shmOpen(size)
	if err != nil {
		return err
	}

	// clear old segment
	if wi.addr != 0 {
		// detach to be able to attach the new id
		_ = shm.Detach(wi.opt.Conn, wi.segId)
		if err := shmClose(wi.shmId, wi.addr); err != nil {
			return err
		}
	}
	wi.shmId, wi.addr = shmId, addr

	buf := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	wi.img = imageutil.NewBGRAFromBuffer(buf, r)

	readOnly := false
	cookie := shm.AttachChecked(wi.opt.Conn, wi.segId, uint32(shmId), readOnly)
	if err := cookie.Check(); err != nil {
		return errors.Wrap(err, "shm attach")
	}
	return nil
}

func (wi *shmWImage) Image() draw.Image {
	return wi.img
}

// Returns after the server has processed the request, the image can be drawn again.
func (wi *shmWImage) PutImage(r image.Rectangle) error {
	b := wi.img.Bounds()
	r = r.Intersect(b)
	if r.Empty() {
		return nil
	}
	c := shm.PutImageChecked(
		wi.opt.Conn,
		xproto.Drawable(wi.opt.Window),
		wi.opt.GCtx,
		uint16(b.Dx()), uint16(b.Dy()), // total width/height
		uint16(r.Min.X-b.Min.X), uint16(r.Min.Y-b.Min.Y), uint16(r.Dx()), uint16(r.Dy()), // src x,y,w,h
		int16(r.Min.X), int16(r.Min.Y), // dst x,y
		wi.opt.ScreenInfo.RootDepth,
		xproto.ImageFormatZPixmap,
		0, // no completion event
		wi.segId,
		0) // offset
	return c.Check()
}

//----------

// From /usr/include/linux/ipc.h
const (
	ipcPrivate = 0
	ipcRmID    = 0
)

func shmOpen(size int) (shmId, addr uintptr, _ error) {
	shmId, _, errno := unix.Syscall(unix.SYS_SHMGET, ipcPrivate, uintptr(size), 0600)
	if errno != 0 {
		return 0, 0, errors.Errorf("shmget: %v", errno)
	}
	addr, _, errno = unix.Syscall(unix.SYS_SHMAT, shmId, 0, 0)
	if errno != 0 {
		return 0, 0, errors.Errorf("shmat: %v", errno)
	}
	return shmId, addr, nil
}

func shmClose(shmId, addr uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_SHMDT, addr, 0, 0)
	_, _, errno2 := unix.Syscall(unix.SYS_SHMCTL, shmId, ipcRmID, 0)
	if errno != 0 {
		return errors.Errorf("shmdt: %v", errno)
	}
	if errno2 != 0 {
		return errors.Errorf("shmctl: %v", errno2)
	}
	return nil
}
