package pymesh

import (
	"bufio"
	"os"

	"github.com/fine-structures/cubemesh/libmesh"
	"github.com/fine-structures/cubemesh/libmesh/wavefront"
	"github.com/go-python/gpython/py"
	"github.com/plan-systems/klog"
)

func importOBJ(pathname string, X *libmesh.Graph) (wavefront.ImportStats, error) {
	file, err := os.Open(pathname)
	if err != nil {
		return wavefront.ImportStats{}, py.ExceptionNewf(py.FileNotFoundError, "%v", err)
	}
	defer file.Close()

	stats, err := wavefront.Import(bufio.NewReader(file), X)
	if err != nil {
		return stats, pyErr(err)
	}
	klog.V(2).Infof("imported %q: %d verts, %d facets (%d reversed)", pathname, stats.Verts, stats.Facets, stats.Reversed)
	return stats, nil
}

func exportOBJ(pathname string, X *libmesh.Graph) error {
	file, err := os.Create(pathname)
	if err != nil {
		return py.ExceptionNewf(py.PermissionError, "%v", err)
	}
	err = wavefront.Export(file, X)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return pyErr(err)
}
