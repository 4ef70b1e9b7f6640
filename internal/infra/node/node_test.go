package node_test

import (
	"inventory-server/internal/infra/node"
	"time"

	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Node", func() {
	ginkgo.Context("GetNodeInfo", func() {
		ginkgo.It("should return node information with all fields", func() {
			nodeInfo := node.GetNodeInfo()

			gomega.Expect(nodeInfo).ToNot(gomega.BeNil())
			gomega.Expect(nodeInfo.ID).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.Hostname).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.Version).To(gomega.Equal(node.Version))
			gomega.Expect(nodeInfo.CommitHash).To(gomega.Equal(node.CommitHash))
		})

		ginkgo.It("should return a valid UUID for node ID", func() {
			_, err := uuid.Parse(node.GetNodeInfo().ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("should keep the same identity across calls", func() {
			first := node.GetNodeInfo()
			second := node.GetNodeInfo()

			gomega.Expect(second.ID).To(gomega.Equal(first.ID))
			gomega.Expect(second.StartedAt).To(gomega.Equal(first.StartedAt))
		})

		ginkgo.It("should not let callers change the shared info", func() {
			first := node.GetNodeInfo()
			first.ID = "changed"

			gomega.Expect(node.GetNodeInfo().ID).NotTo(gomega.Equal("changed"))
		})

		ginkgo.It("should report a growing uptime", func() {
			nodeInfo := node.GetNodeInfo()
			gomega.Expect(nodeInfo.StartedAt).To(gomega.BeTemporally("<=", time.Now()))
			gomega.Expect(nodeInfo.Uptime()).To(gomega.BeNumerically(">=", 0))
		})
	})
})
