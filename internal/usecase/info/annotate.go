// Package info builds the reported view of an application: its services and
// the hostnames they answer on.
package info

import "github.com/devharbor/netward/internal/domain"

// BuildAppInfo derives the reported view of an application from its
// descriptor. Declared proxy hostnames are carried over as-is; the internal
// hostname is added by AnnotateHostnames.
func BuildAppInfo(app domain.Application) *domain.AppInfo {
	report := &domain.AppInfo{Name: app.Name}
	for _, svc := range app.Services {
		report.Services = append(report.Services, domain.ServiceInfo{
			Service:   svc.Name,
			Hostnames: append([]string(nil), svc.ProxyHostnames...),
		})
	}
	AnnotateHostnames(report)
	return report
}

// AnnotateHostnames appends each service's platform-internal hostname to its
// hostname list. Services without a name are left untouched, and a hostname
// already present is not added twice.
func AnnotateHostnames(report *domain.AppInfo) {
	if report == nil {
		return
	}
	for i := range report.Services {
		svc := &report.Services[i]
		if svc.Service == "" {
			continue
		}
		internal := domain.InternalHostname(svc.Service, report.Name)
		if contains(svc.Hostnames, internal) {
			continue
		}
		svc.Hostnames = append(svc.Hostnames, internal)
	}
}

func contains(hosts []string, host string) bool {
	for _, h := range hosts {
		if h == host {
			return true
		}
	}
	return false
}
