package inst

// effAddrEncoding lists the base and index registers of each r/m value in
// memory mode. dhsi resolves to bp except for the direct address case.
var effAddrEncoding = [8][]register{
	alax: {blbx, dhsi},
	clcx: {blbx, bhdi},
	dldx: {chbp, dhsi},
	blbx: {chbp, bhdi},
	ahsp: {dhsi},
	chbp: {bhdi},
	dhsi: {chbp},
	bhdi: {blbx},
}
