package dashboard

const plotlyScriptURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

const stylesheet = `
body{font-family:"Source Sans Pro",-apple-system,BlinkMacSystemFont,"Segoe UI",sans-serif;margin:0;background:#fff;color:#31333F}
.layout{max-width:1400px;margin:0 auto;padding:2rem 3rem}
.page-title{font-size:2.2rem;font-weight:700;margin:0 0 1.5rem}
.metrics{display:grid;grid-template-columns:repeat(3,1fr);gap:1rem;margin-bottom:1.5rem}
.metric-label{font-size:.9rem;color:#6b6f7b}
.metric-value{font-size:2.2rem;font-weight:400}
details.raw{border:1px solid #e6e6ea;border-radius:.5rem;padding:.5rem 1rem}
details.raw summary{cursor:pointer;font-weight:600}
table.raw-table{border-collapse:collapse;width:100%;font-size:.85rem;margin-top:.75rem}
table.raw-table th,table.raw-table td{border-bottom:1px solid #eee;padding:.3rem .5rem;text-align:left}
.error-box{background:#ffebeb;color:#7d353b;border-radius:.5rem;padding:1rem 1.25rem}
.run-id{color:#9a9ca5;font-size:.75rem;margin-top:2rem}
`

const plotInit = `(function(){var el=document.getElementById('chart');var fig=JSON.parse(el.getAttribute('data-figure'));Plotly.newPlot(el,fig.data,fig.layout,{responsive:true});})();`
