package sql_test

import (
	"context"
	"errors"
	"inventory-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type fakeDatabase struct {
	openErr error
	pingErr error
	closed  bool
}

func (d *fakeDatabase) Open() error                  { return d.openErr }
func (d *fakeDatabase) Close()                       { d.closed = true }
func (d *fakeDatabase) Ping(_ context.Context) error { return d.pingErr }

var _ = ginkgo.Describe("WaitReady", func() {
	ginkgo.It("should close the connection after a successful ping", func() {
		db := &fakeDatabase{}
		gomega.Expect(sql.WaitReady(context.Background(), db)).To(gomega.Succeed())
		gomega.Expect(db.closed).To(gomega.BeTrue())
	})

	ginkgo.It("should not close a connection that never opened", func() {
		db := &fakeDatabase{openErr: errors.New("refused")}
		err := sql.WaitReady(context.Background(), db)
		gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("opening database")))
		gomega.Expect(db.closed).To(gomega.BeFalse())
	})

	ginkgo.It("should report a failed ping and still close", func() {
		db := &fakeDatabase{pingErr: errors.New("timeout")}
		err := sql.WaitReady(context.Background(), db)
		gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("checking database")))
		gomega.Expect(db.closed).To(gomega.BeTrue())
	})
})
